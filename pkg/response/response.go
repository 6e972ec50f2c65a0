package response

import (
	"clipstream/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// Body is the envelope every endpoint returns. The HTTP status code is
// mirrored in the body.
type Body struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

func Error(c *gin.Context, err error) {
	status := apperr.StatusCode(err)
	c.JSON(status, Body{
		StatusCode: status,
		Message:    apperr.Message(err),
	})
}
