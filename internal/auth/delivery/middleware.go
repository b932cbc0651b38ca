package delivery

import (
	"net/http"

	"todo-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderAuth is the request header carrying the bearer token.
const HeaderAuth = "x-auth"

// AuthMiddleware resolves the x-auth bearer token to a user and attaches
// it to the request context. Missing or unresolvable tokens are rejected
// with an empty 401 before any handler runs.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderAuth)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("token", token)
		c.Next()
	}
}
