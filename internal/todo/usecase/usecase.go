package usecase

import (
	"errors"

	"todo-backend/internal/todo/domain"
)

var (
	// ErrEmptyText is returned when creating or updating a todo with no text.
	ErrEmptyText = errors.New("todo text must not be empty")
)

// TodoUpdateRequest represents the fields a patch may change
type TodoUpdateRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TodoUsecase defines the interface for todo business logic. Every
// operation takes the requesting user's id and only ever touches that
// user's todos.
type TodoUsecase interface {
	// CreateTodo creates a new todo owned by the given user
	CreateTodo(creatorID, text string) (*domain.Todo, error)

	// GetTodos returns all todos owned by the given user
	GetTodos(creatorID string) ([]*domain.Todo, error)

	// GetTodoByID returns (nil, nil) when the todo is absent or not owned
	GetTodoByID(creatorID, todoID string) (*domain.Todo, error)

	// UpdateTodo applies a patch; completedAt follows completed
	UpdateTodo(creatorID, todoID string, update TodoUpdateRequest) (*domain.Todo, error)

	// DeleteTodo removes a todo and returns the deleted record
	DeleteTodo(creatorID, todoID string) (*domain.Todo, error)
}
