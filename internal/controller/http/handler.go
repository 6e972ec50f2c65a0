package http

import (
	"clipstream/internal/entity"

	"github.com/gin-gonic/gin"
)

// actorFrom rebuilds the authenticated actor from the claims the auth
// middleware stored on the context. Zero value means anonymous.
func actorFrom(c *gin.Context) entity.Actor {
	return entity.Actor{
		ID:   c.GetString("user_id"),
		Role: entity.UserRole(c.GetString("user_role")),
	}
}

type listData struct {
	Items interface{} `json:"items"`
	Meta  interface{} `json:"meta"`
}
