package api

import (
	"net/http"

	"todo-backend/internal/auth/delivery"
	authUsecase "todo-backend/internal/auth/usecase"
	todoDelivery "todo-backend/internal/todo/delivery"
	todoUsecase "todo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		users.DELETE("/me/token", delivery.AuthMiddleware(authUc), authHandler.Logout)
	}

	// Todo routes (protected)
	todos := r.Group("/todos")
	todos.Use(delivery.AuthMiddleware(authUc))
	{
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("", todoHandler.GetTodos)
		todos.GET("/:id", todoHandler.GetTodoByID)
		todos.PATCH("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}
}
