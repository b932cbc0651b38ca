package usecase

import (
	"strings"
	"time"

	"todo-backend/internal/todo/domain"
	"todo-backend/internal/todo/repository"
)

// todoUsecase implements TodoUsecase interface
type todoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{
		todoRepo: todoRepo,
	}
}

func (u *todoUsecase) CreateTodo(creatorID, text string) (*domain.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	todo := &domain.Todo{
		Text:    text,
		Creator: creatorID,
	}
	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *todoUsecase) GetTodos(creatorID string) ([]*domain.Todo, error) {
	todos, err := u.todoRepo.FindByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return todos, nil
}

func (u *todoUsecase) GetTodoByID(creatorID, todoID string) (*domain.Todo, error) {
	return u.todoRepo.FindByIDAndCreator(todoID, creatorID)
}

func (u *todoUsecase) UpdateTodo(creatorID, todoID string, update TodoUpdateRequest) (*domain.Todo, error) {
	if update.Text != nil && strings.TrimSpace(*update.Text) == "" {
		return nil, ErrEmptyText
	}

	patch := repository.TodoUpdate{
		Text:      update.Text,
		Completed: update.Completed,
	}
	// completedAt follows completed: set on completion, cleared otherwise.
	// The caller never supplies it.
	if update.Completed != nil && *update.Completed {
		now := time.Now().UnixMilli()
		patch.CompletedAt = &now
	}

	return u.todoRepo.UpdateByIDAndCreator(todoID, creatorID, patch)
}

func (u *todoUsecase) DeleteTodo(creatorID, todoID string) (*domain.Todo, error) {
	return u.todoRepo.DeleteByIDAndCreator(todoID, creatorID)
}
