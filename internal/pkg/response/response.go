package response

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// CustomError writes the error envelope and aborts the chain. A string is used
// as the message, a validation map goes to details, and a raw error is logged
// and hidden behind a generic message.
func CustomError(c *gin.Context, statusCode int, code string, message any) {
	switch m := message.(type) {
	case string:
		Error(c, statusCode, code, m)
	case error:
		log.Printf("request_failed code=%s path=%s error=%q", code, c.FullPath(), m.Error())
		Error(c, statusCode, code, "Internal server error")
	case map[string]string:
		ErrorWithDetails(c, statusCode, code, "Validation failed", m)
	default:
		ErrorWithDetails(c, statusCode, code, "Request failed", m)
	}
	c.Abort()
}

// FromError translates a service error into the envelope. Causes are logged
// and attached to the gin context, never written to the client.
func FromError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		log.Printf("service_error method=%s path=%s error=%q", c.Request.Method, c.FullPath(), err.Error())
	}
	_ = c.Error(err)
	Error(c, status, apperr.Code(err), apperr.Message(err))
}
