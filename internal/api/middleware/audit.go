package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware logs every request and its outcome. Bodies are captured
// up to a small limit; media uploads are skipped to keep logs readable.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil && c.ContentType() == "application/json" {
			reqBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, 16384))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), c.Request.Body))
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("req_body", string(reqBody)),
		)

		start := time.Now()
		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
		)
	}
}
