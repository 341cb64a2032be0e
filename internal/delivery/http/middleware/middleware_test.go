package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roo-petroleum-web/internal/delivery/http/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler(nil))
	r.Use(mw...)
	ok := func(c *gin.Context) { response.Success(c, http.StatusOK, "ok", nil) }
	r.GET("/x", ok)
	r.POST("/x", ok)
	r.POST("/api", ok)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	t.Run("Should generate an id when none is sent", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
		assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("Should replace unsafe ids", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("a", 129), "tab\tid"} {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(RequestIDHeader, bad)
			assert.NotEqual(t, bad, serve(r, req).Header().Get(RequestIDHeader))
		}
	})
}

func TestCSRFMiddleware(t *testing.T) {
	r := newEngine(CSRFMiddleware(false, "/api"))

	cookieFor := func(t *testing.T) *http.Cookie {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		for _, c := range w.Result().Cookies() {
			if c.Name == CSRFTokenCookieName {
				assert.Len(t, c.Value, CSRFTokenLength*2)
				assert.False(t, c.HttpOnly)
				return c
			}
		}
		t.Fatal("csrf cookie not set")
		return nil
	}

	t.Run("Should accept the token in the header", func(t *testing.T) {
		c := cookieFor(t)
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.AddCookie(c)
		req.Header.Set(CSRFTokenHeaderName, c.Value)
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("Should accept the token in the form", func(t *testing.T) {
		c := cookieFor(t)
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(CSRFTokenFormField+"="+c.Value))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(c)
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("Should reject a post without a cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(CSRFTokenHeaderName, "anything")
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("Should skip exempt paths", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodPost, "/api", nil)).Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := ContactRateLimitConfig(2, time.Minute)
	cfg.KeyPrefix = "rl:test:" + t.Name() + ":"
	r := newEngine(RateLimitMiddleware(cfg))

	t.Run("Should allow up to the limit then answer 429", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Should count clients separately", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	})
}

func TestCheckRateLimitInMemory(t *testing.T) {
	cfg := RateLimitConfig{Limit: 1, Window: time.Minute}
	now := time.Now()
	key := "rl:window:" + t.Name()

	count, _ := checkRateLimitInMemory(key, cfg, now)
	assert.Equal(t, 1, count)
	count, _ = checkRateLimitInMemory(key, cfg, now.Add(time.Second))
	assert.Equal(t, 2, count)
	count, _ = checkRateLimitInMemory(key, cfg, now.Add(2*time.Minute))
	assert.Equal(t, 1, count, "a new window starts from zero")
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"https://roopetroleum.com.au"}, true))
	r.OPTIONS("/api", func(c *gin.Context) {})

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api", nil)
		req.Header.Set("Origin", origin)
		return serve(r, req)
	}

	t.Run("Should allow a listed origin", func(t *testing.T) {
		w := preflight("https://roopetroleum.com.au")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://roopetroleum.com.au", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should refuse other origins", func(t *testing.T) {
		w := preflight("https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should not allow localhost in production", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, preflight("http://localhost:3000").Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	t.Run("Should only send HSTS when enabled", func(t *testing.T) {
		w := serve(newEngine(SecurityHeadersMiddleware(false)), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

		w = serve(newEngine(SecurityHeadersMiddleware(true, "https://cdn.example")), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "script-src 'self' https://cdn.example;")
	})
}
