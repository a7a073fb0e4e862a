package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{"header", "Bearer abc", "", "abc"},
		{"case insensitive scheme", "bearer abc", "", "abc"},
		{"wrong scheme", "Basic abc", "token=xyz", ""},
		{"query fallback", "", "token=xyz", "xyz"},
		{"none", "", "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/game/1?"+test.query, nil)
			if test.header != "" {
				r.Header.Set("Authorization", test.header)
			}
			assert.Equal(t, test.want, bearerToken(r))
		})
	}
}

func TestAuth(t *testing.T) {
	j, err := config.NewJWTWithSecret([]byte("secret"), time.Hour)
	require.NoError(t, err)
	token, err := j.Issue("abc")
	require.NoError(t, err)

	var got *config.SessionClaims
	h := Auth(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(CtxSessionClaims).(*config.SessionClaims)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.GameSessionId)

	got = nil
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer nope")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Nil(t, got)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
		Logging(logger),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/game/1?token=secret", nil))

	assert.Contains(t, buf.String(), "statusCode=418")
	assert.Contains(t, buf.String(), "uri=/game/1")
	assert.NotContains(t, buf.String(), "secret")
}
