package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/pkg/security"
)

var devOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8080",
}

// CORSMiddleware lets the listed origins call the JSON API from the browser.
// Localhost origins are added outside production.
//
// SECURITY: origins are matched exactly; unknown origins get no CORS headers
// and their preflights are refused.
func CORSMiddleware(allowed []string, production bool) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed)+len(devOrigins))
	for _, o := range allowed {
		origins[strings.TrimRight(o, "/")] = true
	}
	if !production {
		for _, o := range devOrigins {
			origins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin means a same-origin or non-browser request
		isAllowed := origin == "" || origins[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventOriginRejected,
				IP:        c.ClientIP(),
				UserAgent: c.GetHeader("User-Agent"),
				RequestID: response.RequestID(c),
				Path:      c.Request.URL.Path,
				Details:   map[string]interface{}{"origin": origin},
			})
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
