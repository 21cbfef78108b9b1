package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRemote создает bare-репозиторий с одним коммитом
func newRemote(t *testing.T) string {
	t.Helper()
	seedDir := t.TempDir()
	seed, err := git.PlainInit(seedDir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(seedDir, "experiment.psyexp"), []byte("<xml/>"), 0o600))

	wt, err := seed.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("experiment.psyexp")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "seed", Email: "seed@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	remoteDir := filepath.Join(t.TempDir(), "remote.git")
	_, err = git.PlainClone(remoteDir, true, &git.CloneOptions{URL: seedDir})
	require.NoError(t, err)
	return remoteDir
}

func headOf(t *testing.T, dir string) string {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	return head.Hash().String()
}

func TestGit_SyncClonesThenPushes(t *testing.T) {
	remote := newRemote(t)
	work := filepath.Join(t.TempDir(), "work")
	g := New(Options{})

	// Setup: первая синхронизация клонирует
	require.NoError(t, g.Sync(context.Background(), remote, work))
	assert.FileExists(t, filepath.Join(work, "experiment.psyexp"))

	// Execute: локальное изменение уходит в remote
	require.NoError(t, os.WriteFile(filepath.Join(work, "conditions.csv"), []byte("a,b\n"), 0o600))
	require.NoError(t, g.Sync(context.Background(), remote, work))

	// Assert
	assert.Equal(t, headOf(t, work), headOf(t, remote))

	// повторная синхронизация без изменений ничего не ломает
	require.NoError(t, g.Sync(context.Background(), remote, work))
}

func TestGit_SyncEmptyRemotePublishesFolder(t *testing.T) {
	remote := filepath.Join(t.TempDir(), "empty.git")
	_, err := git.PlainInit(remote, true)
	require.NoError(t, err)

	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, "experiment.psyexp"), []byte("<xml/>"), 0o600))

	g := New(Options{})
	require.NoError(t, g.Sync(context.Background(), remote, work))

	assert.FileExists(t, filepath.Join(work, "experiment.psyexp"))
	assert.Equal(t, headOf(t, work), headOf(t, remote))
}

func TestGit_SyncRelinksOrigin(t *testing.T) {
	first := newRemote(t)
	work := filepath.Join(t.TempDir(), "work")
	g := New(Options{})
	require.NoError(t, g.Sync(context.Background(), first, work))

	second := filepath.Join(t.TempDir(), "second.git")
	_, err := git.PlainInit(second, true)
	require.NoError(t, err)

	require.NoError(t, g.Sync(context.Background(), second, work))

	repo, err := git.PlainOpen(work)
	require.NoError(t, err)
	origin, err := repo.Remote("origin")
	require.NoError(t, err)
	assert.Equal(t, []string{second}, origin.Config().URLs)
	assert.Equal(t, headOf(t, work), headOf(t, second))
}

func TestGit_SyncRequiresRemoteAndFolder(t *testing.T) {
	g := New(Options{})

	assert.ErrorIs(t, g.Sync(context.Background(), "", t.TempDir()), ErrNoRemote)
	assert.Error(t, g.Sync(context.Background(), "https://git.example/lab/x.git", ""))
}

func TestMapErr(t *testing.T) {
	err := mapErr("clone", fmt.Errorf("wrapped: %w", transport.ErrRepositoryNotFound))
	assert.True(t, errors.Is(err, ErrRemoteNotFound))

	err = mapErr("push", errors.New("boom"))
	assert.False(t, errors.Is(err, ErrRemoteNotFound))
	assert.Contains(t, err.Error(), "push failed")
}

func TestGit_Auth(t *testing.T) {
	g := New(Options{Token: "glpat-1"})

	auth, err := g.auth("https://git.example/lab/memory.git")
	require.NoError(t, err)
	basic, ok := auth.(*githttp.BasicAuth)
	require.True(t, ok)
	assert.Equal(t, "glpat-1", basic.Password)

	auth, err = g.auth("/srv/git/memory.git")
	require.NoError(t, err)
	assert.Nil(t, auth)

	// ssh без ключа: используется ssh-agent
	auth, err = g.auth("git@git.example:lab/memory.git")
	require.NoError(t, err)
	assert.Nil(t, auth)

	withKey := New(Options{SSHKeyPath: filepath.Join(t.TempDir(), "missing_key")})
	_, err = withKey.auth("git@git.example:lab/memory.git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh key")
}
