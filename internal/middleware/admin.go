package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards the admin routes with a shared token. An empty token
// disables the admin API entirely.
func AdminAuth(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin api is disabled"})
			return
		}

		got := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid admin token"})
			return
		}

		c.Next()
	}
}
