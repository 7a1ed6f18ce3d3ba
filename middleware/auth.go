package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// AuthMiddleware checks the Authorization header against the configured
// static bearer token. Any mismatch answers 403.
func AuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ErrorResponse{
				Status: "error",
				Error:  "Authorization header is required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ErrorResponse{
				Status: "error",
				Error:  "Authorization header format must be Bearer {token}",
			})
			return
		}

		if token == "" || parts[1] != token {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ErrorResponse{
				Status: "error",
				Error:  "Invalid authentication token",
			})
			return
		}

		c.Next()
	}
}
