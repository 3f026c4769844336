package middleware

import (
	"Chirp/internal/pkg/response"
	"Chirp/internal/service"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the caller's static token.
const APIKeyHeader = "Api-Key"

// AuthMiddleware resolves the Api-Key header to a user and injects the user
// id into the request context. An unknown key provisions a new user, so the
// first authenticated call of any client is also a write.
func AuthMiddleware(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			response.Error(c, service.ErrAPIKeyRequired)
			c.Abort()
			return
		}

		user, err := userSvc.ResolveByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
