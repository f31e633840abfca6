package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500. The request id is echoed in the
// body when RequestID ran first, so support can find the stack in the logs.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := c.Request.Context()
			requestID := logger.GetRequestID(ctx)

			log.LogAttrs(ctx, logger.ErrorLevel, "handler panic",
				logger.String("request_id", requestID),
				logger.String("route", c.FullPath()),
				logger.String("method", c.Request.Method),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			body := ginext.H{"error": "internal server error"}
			if requestID != "" {
				body["request_id"] = requestID
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()

		c.Next()
	}
}
