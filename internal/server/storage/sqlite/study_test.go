package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/server/storage"
)

func newTestStudy(ownerID string) *storage.Study {
	now := time.Now().UTC()
	return &storage.Study{
		OwnerID:                 ownerID,
		Name:                    "Memory test",
		InternalName:            "mem-1",
		Description:             "A short memory study",
		ExternalStudyURL:        "https://survey.example.org/mem",
		CompletionCode:          "ABC123",
		StudyType:               "SINGLE",
		Status:                  "UNPUBLISHED",
		DeviceCompatibility:     []string{"desktop", "tablet"},
		Reward:                  650,
		TotalAvailablePlaces:    100,
		EstimatedCompletionTime: 10,
		MaximumAllowedTime:      13,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func TestStudyStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Setup
	ownerID := createTestUser(t, ctx, s)
	first := newTestStudy(ownerID)
	second := newTestStudy(ownerID)
	second.DeviceCompatibility = nil

	// Execute
	require.NoError(t, s.CreateStudy(ctx, first))
	require.NoError(t, s.CreateStudy(ctx, second))

	// Assert
	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := s.GetStudy(ctx, ownerID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, got.Name)
	assert.Equal(t, first.InternalName, got.InternalName)
	assert.Equal(t, first.ExternalStudyURL, got.ExternalStudyURL)
	assert.Equal(t, first.CompletionCode, got.CompletionCode)
	assert.Equal(t, []string{"desktop", "tablet"}, got.DeviceCompatibility)
	assert.Equal(t, int64(650), got.Reward)
	assert.Equal(t, 100, got.TotalAvailablePlaces)
	assert.Equal(t, 10, got.EstimatedCompletionTime)
	assert.Equal(t, 13, got.MaximumAllowedTime)

	got, err = s.GetStudy(ctx, ownerID, second.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DeviceCompatibility)
}

func TestStudyStorage_GetStudy_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)
	study := newTestStudy(ownerID)
	require.NoError(t, s.CreateStudy(ctx, study))

	got, err := s.GetStudy(ctx, otherID, study.ID)
	assert.ErrorIs(t, err, storage.ErrStudyNotFound)
	assert.Nil(t, got)

	_, err = s.GetStudy(ctx, ownerID, study.ID+100)
	assert.ErrorIs(t, err, storage.ErrStudyNotFound)
}

func TestStudyStorage_UpdateStudyStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ownerID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)
	study := newTestStudy(ownerID)
	require.NoError(t, s.CreateStudy(ctx, study))

	tests := []struct {
		wantError error
		name      string
		ownerID   string
		id        int64
	}{
		{name: "owner updates", ownerID: ownerID, id: study.ID},
		{name: "other user", ownerID: otherID, id: study.ID, wantError: storage.ErrStudyNotFound},
		{name: "missing study", ownerID: ownerID, id: study.ID + 1, wantError: storage.ErrStudyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updatedAt := time.Now().UTC().Add(time.Minute)
			err := s.UpdateStudyStatus(ctx, tt.ownerID, tt.id, "ACTIVE", updatedAt)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := s.GetStudy(ctx, ownerID, study.ID)
			require.NoError(t, err)
			assert.Equal(t, "ACTIVE", got.Status)
			assert.WithinDuration(t, updatedAt, got.UpdatedAt, time.Second)
		})
	}
}

func TestStudyStorage_CreateStudy_UnknownOwner(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.CreateStudy(context.Background(), newTestStudy("missing-owner"))
	assert.Error(t, err)
}
