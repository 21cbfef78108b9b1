package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &storage.User{
		ID:           userID,
		Username:     "user_" + userID[:8],
		Name:         "Test User",
		CurrencyCode: "GBP",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))
	return userID
}

func TestStorage_MigrationsApplied(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	version, err := s.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestStorage_ReopenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sandbox.db")

	// Setup
	s, err := New(ctx, path)
	require.NoError(t, err)
	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.Close())

	// Execute: повторное открытие не должно заново применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	// Assert
	got, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
}
