package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORS allows the browser front-end to call the API. No origins means any
// origin, which is only sensible for local development.
func CORS(origins []string) ginext.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowHeaders("X-Session-ID", RequestIDHeader, AdminTokenHeader)
	cfg.AddExposeHeaders(RequestIDHeader)

	return cors.New(cfg)
}
