package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a handler panic into a 500 carrying the request id, so an
// admin can quote it when reporting the failure.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			requestID := CurrentRequestID(c)
			event := log.Error().
				Interface("panic", r).
				Str("path", c.Request.URL.Path).
				Str("request_id", requestID).
				Bytes("stack", debug.Stack())
			if sess, ok := CurrentSession(c); ok {
				event = event.Str("admin", sess.AdminName)
			}
			event.Msg("panic recovered")

			body := gin.H{"error": "internal_server_error"}
			if requestID != "" {
				body["requestId"] = requestID
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}
