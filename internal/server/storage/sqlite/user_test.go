package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		wantError error
		user      *storage.User
		name      string
	}{
		{
			name: "create new user successfully",
			user: &storage.User{
				ID:           uuid.New().String(),
				Username:     "testuser1",
				Name:         "Test One",
				CurrencyCode: "GBP",
				CreatedAt:    time.Now().UTC(),
			},
		},
		{
			name: "create user with another currency",
			user: &storage.User{
				ID:           uuid.New().String(),
				Username:     "testuser2",
				Name:         "Test Two",
				CurrencyCode: "USD",
				CreatedAt:    time.Now().UTC(),
			},
		},
		{
			name: "duplicate username",
			user: &storage.User{
				ID:           uuid.New().String(),
				Username:     "testuser1",
				CurrencyCode: "GBP",
				CreatedAt:    time.Now().UTC(),
			},
			wantError: storage.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, tt.user)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// Verify user was created
			got, err := s.GetUserByUsername(ctx, tt.user.Username)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, got.ID)
			assert.Equal(t, tt.user.Name, got.Name)
			assert.Equal(t, tt.user.CurrencyCode, got.CurrencyCode)
			assert.WithinDuration(t, tt.user.CreatedAt, got.CreatedAt, time.Second)
		})
	}
}

func TestUserStorage_GetUserByUsername_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserStorage_GetUserByID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	tests := []struct {
		wantError error
		name      string
		id        string
	}{
		{name: "existing user", id: userID},
		{name: "unknown id", id: uuid.New().String(), wantError: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetUserByID(ctx, tt.id)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got.ID)
			assert.Equal(t, "GBP", got.CurrencyCode)
		})
	}
}
