package router

import (
	"time"

	"renthub/controllers"
	"renthub/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger assigns a request id (reusing the caller's X-Request-ID) and logs
// method, path, status and latency once the request completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(controllers.CtxRequestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", id,
		}
		if user, ok := controllers.GetUserLogged(c); ok {
			fields = append(fields, "user_id", user.ID)
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
