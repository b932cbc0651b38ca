package api

import (
	authUsecase "todo-backend/internal/auth/usecase"
	todoUsecase "todo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	todoUsecase todoUsecase.TodoUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase) *Handler {
	return &Handler{
		authUsecase: authUc,
		todoUsecase: todoUc,
	}
}

func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, x-auth")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "x-auth")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.todoUsecase)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
