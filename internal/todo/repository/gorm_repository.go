package repository

import (
	"errors"
	"time"

	"todo-backend/internal/todo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByCreator(creatorID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.Where("creator = ?", creatorID).Order("created_at ASC").Find(&todos).Error
	return todos, err
}

func (r *gormTodoRepository) FindByIDAndCreator(id, creatorID string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.Where("id = ? AND creator = ?", id, creatorID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) UpdateByIDAndCreator(id, creatorID string, update TodoUpdate) (*domain.Todo, error) {
	values := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Text != nil {
		values["text"] = *update.Text
	}
	if update.Completed != nil {
		values["completed"] = *update.Completed
		if update.CompletedAt != nil {
			values["completed_at"] = *update.CompletedAt
		} else {
			values["completed_at"] = nil
		}
	}

	// Ownership check and update in one conditional statement
	res := r.db.Model(&domain.Todo{}).Where("id = ? AND creator = ?", id, creatorID).Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByIDAndCreator(id, creatorID)
}

func (r *gormTodoRepository) DeleteByIDAndCreator(id, creatorID string) (*domain.Todo, error) {
	todo, err := r.FindByIDAndCreator(id, creatorID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, nil
	}

	// The delete repeats the ownership filter, so a record swapped out
	// between the two statements just reads as not found.
	res := r.db.Where("id = ? AND creator = ?", id, creatorID).Delete(&domain.Todo{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return todo, nil
}
