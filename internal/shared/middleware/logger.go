package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request. Server-side failures are
// logged at error level so a 500 from an unmapped storage error stands
// out in the stream.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := zerolog.InfoLevel
		if status >= 500 {
			level = zerolog.ErrorLevel
		}

		log.WithLevel(level).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int("size", c.Writer.Size()).
			Dur("latency_ms", latency).
			Str("ip", c.ClientIP()).
			Msg("request completed")
	}
}
