package middleware

import (
	"strings"

	"clipstream/pkg/apperr"
	"clipstream/pkg/jwt"
	"clipstream/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer access token and stores the actor
// identity on the context for handlers.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperr.Unauthenticated("authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperr.Unauthenticated("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			response.Error(c, apperr.Unauthenticated("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware stores the actor identity when a valid Bearer
// token is present but lets anonymous requests through. Public endpoints
// use it so viewer-scoped behavior (view dedup, like status) still works
// for logged-in users.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwtService.ValidateAccessToken(parts[1]); err == nil {
					c.Set("user_id", claims.UserID)
					c.Set("user_role", claims.Role)
				}
			}
		}
		c.Next()
	}
}
