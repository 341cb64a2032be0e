// Package flash carries a one-shot message across a redirect in a signed cookie.
package flash

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "roo_flash"
	maxAge     = 60 * time.Second
	issuer     = "roo-petroleum-web"
)

var ErrInvalidFlash = errors.New("invalid flash cookie")

// Message is the payload carried to the next page view
type Message struct {
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies with HS256
type Store struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewStore creates a store. An empty secret is replaced by a random one, which
// means flashes do not survive a restart or cross instances.
func NewStore(secret string, secure bool) (*Store, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate flash secret: %w", err)
		}
	}
	return &Store{secret: key, secure: secure, now: time.Now}, nil
}

// Encode returns the signed token for status
func (s *Store) Encode(status string) (string, error) {
	now := s.now()
	claims := Message{
		Status: status,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode verifies a token and returns its status
func (s *Store) Decode(raw string) (string, error) {
	var claims Message
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFlash, err)
	}
	return claims.Status, nil
}

// Set writes the flash cookie
func (s *Store) Set(c *gin.Context, status string) error {
	token, err := s.Encode(status)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(maxAge.Seconds()), "/", "", s.secure, true)
	return nil
}

// Pop reads and clears the flash cookie. A missing or tampered cookie yields "".
func (s *Store) Pop(c *gin.Context) string {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)

	status, err := s.Decode(raw)
	if err != nil {
		return ""
	}
	return status
}
