package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/server/storage"
	"github.com/iudanet/studysync/pkg/api"
)

// memoryUsers возвращает мок UserStorage поверх map
func memoryUsers(users map[string]*storage.User) *storage.UserStorageMock {
	return &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *storage.User) error {
			if _, exists := users[user.Username]; exists {
				return storage.ErrUserAlreadyExists
			}
			users[user.Username] = user
			return nil
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*storage.User, error) {
			user, ok := users[username]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			return user, nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*storage.User, error) {
			for _, user := range users {
				if user.ID == userID {
					return user, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
	}
}

func TestTokenHandler_Issue_CreatesUser(t *testing.T) {
	// Setup
	users := map[string]*storage.User{}
	cfg := testJWTConfig()
	handler := NewTokenHandler(setupTestLogger(), memoryUsers(users), cfg)

	req := newJSONRequest(t, http.MethodPost, "/api/v1/sandbox/tokens",
		api.TokenRequest{Username: "alice", CurrencyCode: "usd"}, "")
	w := httptest.NewRecorder()

	// Execute
	handler.Issue(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.TokenResponse](t, w)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	require.Contains(t, users, "alice")
	created := users["alice"]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Name)
	assert.Equal(t, "USD", created.CurrencyCode)

	claims, err := ValidateAccessToken(cfg, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenHandler_Issue_ExistingUser(t *testing.T) {
	// Setup
	users := map[string]*storage.User{
		"bob": {ID: "user-bob", Username: "bob", Name: "Bob", CurrencyCode: "GBP"},
	}
	mock := memoryUsers(users)
	cfg := testJWTConfig()
	handler := NewTokenHandler(setupTestLogger(), mock, cfg)

	req := newJSONRequest(t, http.MethodPost, "/api/v1/sandbox/tokens",
		api.TokenRequest{Username: "bob", CurrencyCode: "EUR"}, "")
	w := httptest.NewRecorder()

	// Execute
	handler.Issue(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mock.CreateUserCalls())
	assert.Equal(t, "GBP", users["bob"].CurrencyCode)

	resp := decodeBody[api.TokenResponse](t, w)
	claims, err := ValidateAccessToken(cfg, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-bob", claims.UserID)
}

func TestTokenHandler_Issue_ConcurrentCreate(t *testing.T) {
	// Setup: пользователь появляется между GetUserByUsername и CreateUser
	existing := &storage.User{ID: "user-carol", Username: "carol", CurrencyCode: "GBP"}
	lookups := 0
	mock := &storage.UserStorageMock{
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*storage.User, error) {
			lookups++
			if lookups == 1 {
				return nil, storage.ErrUserNotFound
			}
			return existing, nil
		},
		CreateUserFunc: func(ctx context.Context, user *storage.User) error {
			return storage.ErrUserAlreadyExists
		},
	}
	cfg := testJWTConfig()
	handler := NewTokenHandler(setupTestLogger(), mock, cfg)

	req := newJSONRequest(t, http.MethodPost, "/api/v1/sandbox/tokens", api.TokenRequest{Username: "carol"}, "")
	w := httptest.NewRecorder()

	// Execute
	handler.Issue(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.TokenResponse](t, w)
	claims, err := ValidateAccessToken(cfg, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-carol", claims.UserID)
}

func TestTokenHandler_Issue_Errors(t *testing.T) {
	tests := []struct {
		body     any
		mock     *storage.UserStorageMock
		name     string
		wantCode int
	}{
		{
			name:     "invalid json",
			body:     "{not json",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty username",
			body:     api.TokenRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid username",
			body:     api.TokenRequest{Username: "a b"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad currency",
			body:     api.TokenRequest{Username: "alice", CurrencyCode: "POUND"},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: api.TokenRequest{Username: "alice"},
			mock: &storage.UserStorageMock{
				GetUserByUsernameFunc: func(ctx context.Context, username string) (*storage.User, error) {
					return nil, errors.New("disk I/O error")
				},
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := tt.mock
			if mock == nil {
				mock = memoryUsers(map[string]*storage.User{})
			}
			handler := NewTokenHandler(setupTestLogger(), mock, testJWTConfig())

			w := httptest.NewRecorder()
			handler.Issue(w, newJSONRequest(t, http.MethodPost, "/api/v1/sandbox/tokens", tt.body, ""))

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, http.StatusText(tt.wantCode), resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	users := map[string]*storage.User{
		"alice": {ID: "user-1", Username: "alice", Name: "Alice", CurrencyCode: "GBP"},
	}

	tests := []struct {
		mock     *storage.UserStorageMock
		name     string
		userID   string
		wantCode int
	}{
		{name: "current user", userID: "user-1", wantCode: http.StatusOK},
		{name: "no user in context", wantCode: http.StatusUnauthorized},
		{name: "deleted user", userID: "user-2", wantCode: http.StatusUnauthorized},
		{
			name:   "storage failure",
			userID: "user-1",
			mock: &storage.UserStorageMock{
				GetUserByIDFunc: func(ctx context.Context, userID string) (*storage.User, error) {
					return nil, errors.New("database is locked")
				},
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := tt.mock
			if mock == nil {
				mock = memoryUsers(users)
			}
			handler := NewUserHandler(setupTestLogger(), mock)

			w := httptest.NewRecorder()
			handler.Me(w, newJSONRequest(t, http.MethodGet, "/api/v1/users/me/", nil, tt.userID))

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			resp := decodeBody[api.UserPayload](t, w)
			assert.Equal(t, "user-1", resp.ID)
			assert.Equal(t, "alice", resp.Username)
			assert.Equal(t, "Alice", resp.Name)
			assert.Equal(t, "GBP", resp.CurrencyCode)
			assert.Empty(t, resp.Token)
		})
	}
}
