package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/pkg/apperror"
	"roo-petroleum-web/pkg/security"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is checked first for script clients
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input server-rendered forms post back
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFToken returns the token pages must embed in their forms.
// On a visitor's first request the cookie is only being set, so the token comes from the context.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every request gets a csrf_token cookie. State-changing requests must echo the
// cookie value in the X-CSRF-Token header or in the csrf_token form field.
// Paths in exempt are not checked; the JSON API relies on CORS and rate limiting.
func CSRFMiddleware(secure bool, exempt ...string) gin.HandlerFunc {
	exemptPaths := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		exemptPaths[p] = true
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.Error(apperror.Internal(err))
				c.Abort()
				return
			}

			// SameSite=Lax keeps the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, false)
		}
		c.Set(csrfContextKey, token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if exemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		reason := ""
		switch {
		case submitted == "":
			reason = "missing"
		case subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1:
			reason = "mismatch"
		}
		if reason != "" {
			security.DefaultLogger().LogCSRFViolation(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				response.RequestID(c),
				c.Request.URL.Path,
				reason,
			)
			c.Error(apperror.Forbidden("Your session expired. Please reload the page and try again."))
			c.Abort()
			return
		}

		c.Next()
	}
}
