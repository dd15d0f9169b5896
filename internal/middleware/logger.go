package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// ErrorLogger turns panics into a 500 envelope and logs failed requests.
// Errors attached with c.Error are logged as warnings below 500.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				logFailure(c, start, "panic", fmt.Sprint(recovered), debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":       "INTERNAL_SERVER_ERROR",
						"message":    "Internal Server Error",
						"request_id": requestID(c),
					},
				})
				return
			}
			logOutcome(c, start)
		}()

		c.Next()
	}
}

func logOutcome(c *gin.Context, start time.Time) {
	status := c.Writer.Status()
	if len(c.Errors) == 0 {
		if status >= http.StatusInternalServerError {
			logFailure(c, start, "http_error", fmt.Sprintf("status=%d", status), nil)
		}
		return
	}

	for _, e := range c.Errors {
		if status >= http.StatusInternalServerError {
			logFailure(c, start, fmt.Sprint(e.Type), e.Error(), nil)
			continue
		}
		log.Printf("request_warning status=%d method=%s path=%s request_id=%s error=%q",
			status, c.Request.Method, c.Request.URL.Path, requestID(c), e.Error())
	}
}

func logFailure(c *gin.Context, start time.Time, kind, message string, stack []byte) {
	line := fmt.Sprintf("request_error type=%s status=%d method=%s path=%s query=%s client_ip=%s user_id=%d role=%s request_id=%s latency=%s error=%q",
		kind,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		c.GetInt64("user_id"),
		c.GetString("role"),
		requestID(c),
		time.Since(start),
		message,
	)
	if len(stack) > 0 {
		line += "\n" + string(stack)
	}
	log.Print(line)
}

func requestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader(requestIDHeader)
}
