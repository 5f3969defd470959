package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDKey = "request_id"

// RequestID tags the request with the caller-supplied X-Request-ID or a
// fresh uuid, and echoes it back in the response.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
