package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"roo-petroleum-web/pkg/logger"
)

// render writes a gomponents document as the response body
func render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		// Headers are gone by now; all that is left is to record it
		logger.Log.ErrorContext(c.Request.Context(), "Failed to render page",
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
}

// problemHeading titles the error page for a status code
func problemHeading(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Page not found"
	case http.StatusForbidden:
		return "Request blocked"
	case http.StatusTooManyRequests:
		return "Slow down"
	default:
		return "Something went wrong"
	}
}
