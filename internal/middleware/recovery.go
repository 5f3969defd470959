package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 instead of tearing down the
// connection. The stack goes to the log together with the request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.String("request_id", c.GetString(RequestIDKey)),
					logger.String("path", c.Request.URL.Path),
					logger.Any("error", err),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}
