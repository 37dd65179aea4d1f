package middleware

import (
	"net/http"

	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DefaultMaxRequestSize caps request bodies at 1 MB. Intake payloads are
// small JSON documents; anything larger is a misdirected upload.
const DefaultMaxRequestSize = 1 << 20

// RequestSizeLimitMiddleware rejects bodies larger than maxSize bytes, both
// by declared Content-Length and by wrapping the body reader.
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxRequestSize
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
