package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := New(&Config{Secret: "secret"})
	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "reports-admin")
	require.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "reports-admin", sub)

	_, err = VerifyToken(New(&Config{Secret: "other"}), tok)
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	jwtAuth := New(&Config{Secret: "secret"})
	tok, err := NewTokenWithSubject(jwtAuth, -time.Hour, "")
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestWithAuth(t *testing.T) {
	jwtAuth := New(&Config{Secret: "secret"})
	h := WithAuth(jwtAuth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + tok, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
			if tt.header != "" {
				r.Header.Set(AuthHeaderKey, tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	var c *Config
	assert.False(t, c.Enabled())
	assert.True(t, (&Config{Secret: "s"}).Enabled())
}
