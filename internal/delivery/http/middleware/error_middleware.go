package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/pkg/apperror"
	"roo-petroleum-web/pkg/logger"
)

// ErrorPage renders an HTML error for browser routes
type ErrorPage func(c *gin.Context, code int, message string)

// ErrorHandler turns the last error attached to the context into a response.
// /v1 routes get the JSON envelope; everything else goes to page when set.
func ErrorHandler(page ErrorPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// SECURITY: the cause stays in the logs, clients only see the generic message
			logger.Log.ErrorContext(c.Request.Context(), "Request failed",
				"path", c.Request.URL.Path,
				"status", appErr.Code,
				"request_id", response.RequestID(c),
				"error", err,
			)
			if appErr.Code == http.StatusInternalServerError {
				appErr = apperror.New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", appErr.Err)
			}
		}

		if page != nil && !strings.HasPrefix(c.Request.URL.Path, "/v1") {
			page(c, appErr.Code, appErr.Message)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}
