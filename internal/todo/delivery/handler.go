package delivery

import (
	"errors"
	"log"
	"net/http"

	"todo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateTodo creates a new todo owned by the authenticated user
// POST /todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.CreateTodo(userID, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[todo] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// GetTodos returns all todos owned by the authenticated user
// GET /todos
func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID := c.GetString("userID")

	todos, err := h.todoUsecase.GetTodos(userID)
	if err != nil {
		log.Printf("[todo] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

// GetTodoByID returns one of the authenticated user's todos
// GET /todos/:id
func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	userID := c.GetString("userID")

	todoID, ok := wellFormedID(c)
	if !ok {
		return
	}

	todo, err := h.todoUsecase.GetTodoByID(userID, todoID)
	if err != nil {
		log.Printf("[todo] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if todo == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

// UpdateTodo applies a partial update to one of the user's todos
// PATCH /todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetString("userID")

	todoID, ok := wellFormedID(c)
	if !ok {
		return
	}

	var update usecase.TodoUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(userID, todoID, update)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[todo] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if todo == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

// DeleteTodo removes one of the user's todos and returns the removed record
// DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString("userID")

	todoID, ok := wellFormedID(c)
	if !ok {
		return
	}

	todo, err := h.todoUsecase.DeleteTodo(userID, todoID)
	if err != nil {
		log.Printf("[todo] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if todo == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

// wellFormedID validates the :id route param. A malformed id answers 404
// just like a missing record, so the id format leaks nothing.
func wellFormedID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Status(http.StatusNotFound)
		return "", false
	}
	return id, true
}
