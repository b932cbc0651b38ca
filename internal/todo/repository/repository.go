package repository

import "todo-backend/internal/todo/domain"

// TodoUpdate carries the fields an update may change. CompletedAt is
// only written when Completed is set, and nil then means NULL.
type TodoUpdate struct {
	Text        *string
	Completed   *bool
	CompletedAt *int64
}

// TodoRepository defines the interface for todo data access. Every
// lookup is ownership-scoped: id and creator are matched in a single
// filtered query, so a todo owned by someone else is indistinguishable
// from one that does not exist.
type TodoRepository interface {
	// Create persists a new todo for the given creator
	Create(todo *domain.Todo) error

	// FindByCreator returns all todos owned by the given user
	FindByCreator(creatorID string) ([]*domain.Todo, error)

	// FindByIDAndCreator returns (nil, nil) if the todo is absent or
	// owned by a different user
	FindByIDAndCreator(id, creatorID string) (*domain.Todo, error)

	// UpdateByIDAndCreator applies the patch under the same ownership
	// filter and returns the updated record, (nil, nil) if not matched
	UpdateByIDAndCreator(id, creatorID string, update TodoUpdate) (*domain.Todo, error)

	// DeleteByIDAndCreator removes the todo under the same ownership
	// filter and returns the deleted record, (nil, nil) if not matched
	DeleteByIDAndCreator(id, creatorID string) (*domain.Todo, error)
}
