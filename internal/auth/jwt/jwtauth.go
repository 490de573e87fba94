package jwt

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const AuthHeaderKey = "Authorization"

type Config struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether report endpoints require a bearer token.
func (c *Config) Enabled() bool {
	return c != nil && c.Secret != ""
}

func New(c *Config) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(c.Secret), nil)
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewTokenWithSubject creates a JWT with optional subject (username) claim.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}

// WithAuth middleware checks if the caller holds a valid admin token.
func WithAuth(jwtAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get(AuthHeaderKey), "Bearer ")
			if token == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			if _, err := VerifyToken(jwtAuth, token); err != nil {
				http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
