package middleware

import (
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// RequestID propagates the caller's X-Request-ID or assigns a new one. The id
// is stored in the request context so every log line of the request carries it.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = logger.GenerateRequestID()
		}

		c.Request = c.Request.WithContext(logger.SetRequestID(c.Request.Context(), id))
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
