package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	corsAllowedHeaders = "Content-Type, Accept"
	corsAllowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"
)

// CORS is an allowlist-based CORS middleware for the browser form.
// If allowedOrigins contains "*", any Origin is echoed back.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	origins := lo.FilterMap(allowedOrigins, func(o string, _ int) (string, bool) {
		o = strings.TrimSpace(o)
		return o, o != ""
	})
	allowAny := lo.Contains(origins, "*")
	allow := lo.Associate(origins, func(o string) (string, struct{}) {
		return o, struct{}{}
	})

	return func(c *gin.Context) {
		origin := strings.TrimSpace(c.GetHeader("Origin"))
		_, known := allow[origin]
		if origin != "" && (allowAny || known) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			h.Set("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions && origin != "" && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
