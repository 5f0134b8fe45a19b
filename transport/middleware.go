package transport

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogging tags every request with an id and logs its outcome once the handler chain is done.
func RequestLogging(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Header(RequestIDHeader, requestID)
		c.Next()

		level.Info(logger).Log(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
