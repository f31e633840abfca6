package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		ctx := c.Request.Context()
		log.LogRequest(ctx, c.Request.Method, path, c.Writer.Status(), time.Since(start))

		// set by the handlers when they turn an error into a response
		if msg := c.GetString("error"); msg != "" {
			log.LogAttrs(ctx, logger.WarnLevel, "request failed",
				logger.String("method", c.Request.Method),
				logger.String("path", path),
				logger.Int("status", c.Writer.Status()),
				logger.String("error", msg),
			)
		}
	}
}
