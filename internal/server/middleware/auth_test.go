package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/server/handlers"
	"github.com/iudanet/studysync/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	jwtConfig := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(jwtConfig, "user123", "testuser")
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, "bearer " + token} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		AuthMiddleware(setupTestLogger(), jwtConfig)(testHandler(t, "user123", "testuser")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	jwtConfig := testJWTConfig()

	expiredConfig := jwtConfig
	expiredConfig.AccessTokenTTL = -time.Minute
	expired, _, err := handlers.GenerateAccessToken(expiredConfig, "user123", "testuser")
	require.NoError(t, err)

	foreignConfig := jwtConfig
	foreignConfig.Secret = []byte("another-secret")
	foreign, _, err := handlers.GenerateAccessToken(foreignConfig, "user123", "testuser")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", header: "", message: "missing token"},
		{name: "no scheme", header: "sometoken", message: "invalid token format"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", message: "invalid token format"},
		{name: "empty token", header: "Bearer ", message: "invalid token format"},
		{name: "malformed token", header: "Bearer not.a.jwt", message: "invalid token"},
		{name: "expired token", header: "Bearer " + expired, message: "invalid token"},
		{name: "foreign secret", header: "Bearer " + foreign, message: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(setupTestLogger(), jwtConfig)(next).ServeHTTP(w, req)

			assert.False(t, called, "next handler must not be called")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "Unauthorized", resp.Error)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
