package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studysync/internal/client/storage"
	"github.com/iudanet/studysync/internal/models"
)

func TestDict_MissingFileIsEmpty(t *testing.T) {
	d := New[models.Credential](filepath.Join(t.TempDir(), "users.json"))

	keys, err := d.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	ok, err := d.Contains("alice")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.Get("alice")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestDict_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	d := New[models.Credential](path)

	_, err := d.Get("alice")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrCorrupt))

	err = d.Set("alice", models.Credential{Username: "alice"})
	assert.True(t, errors.Is(err, storage.ErrCorrupt), "corrupt file must not be overwritten silently")
}

func TestDict_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	keys, err := New[models.Credential](path).Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestDict_SetIsInMemoryUntilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.json")
	d := New[models.Credential](path)

	require.NoError(t, d.Set("alice", models.Credential{Username: "alice", Token: "t1"}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, d.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := New[models.Credential](path)
	got, err := reloaded.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
}

func TestDict_SaveIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	d := New[models.Project](path)

	id := int64(42)
	level := models.PermissionOwner
	last := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, key := range []string{"zeta/b", "alpha/a", "mid/c"} {
		require.NoError(t, d.Set(key, models.Project{
			LocalID:         key,
			RemoteID:        &id,
			Title:           "T " + key,
			Reward:          decimal.RequireFromString("0.13"),
			PermissionLevel: &level,
			LastSync:        &last,
			Extra:           map[string]any{"b": 1, "a": "x"},
		}))
	}

	require.NoError(t, d.Save())
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, d.Save())
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// повторная загрузка и сохранение тоже дают те же байты
	require.NoError(t, New[models.Project](path).Save())
	third, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, third)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestDict_DeleteAndKeys(t *testing.T) {
	d := New[models.Credential](filepath.Join(t.TempDir(), "users.json"))

	require.NoError(t, d.Set("bob", models.Credential{Username: "bob"}))
	require.NoError(t, d.Set("alice", models.Credential{Username: "alice"}))

	keys, err := d.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, keys)

	require.NoError(t, d.Delete("bob"))
	require.NoError(t, d.Delete("nobody"))

	keys, err = d.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, keys)
}

func TestDict_LastSaveWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	a := New[models.Credential](path)
	b := New[models.Credential](path)

	require.NoError(t, a.Set("alice", models.Credential{Username: "alice"}))
	require.NoError(t, b.Set("bob", models.Credential{Username: "bob"}))
	require.NoError(t, a.Save())
	require.NoError(t, b.Save())

	keys, err := New[models.Credential](path).Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, keys)
}

func TestStores_ProjectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	store := NewProjectStore(path)

	id := int64(7)
	p := models.Project{
		LocalID:          "lab/memory",
		RemoteID:         &id,
		Title:            "Memory",
		ParticipantCount: 500,
		DurationMinutes:  1,
		Reward:           decimal.RequireFromString("0.13"),
		LocalFolder:      "/work/memory",
		Tags:             models.Tags{"a"},
	}
	require.NoError(t, store.Set(p.LocalID, p))
	require.NoError(t, store.Save())

	got, err := NewProjectStore(path).Get("lab/memory")
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, *p.RemoteID, *got.RemoteID)
	assert.True(t, p.Reward.Equal(got.Reward))
	assert.Equal(t, p.LocalFolder, got.LocalFolder)
	assert.Equal(t, p.Tags, got.Tags)
}
