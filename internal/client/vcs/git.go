// Package vcs keeps a local working copy in step with its remote repository.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const remoteName = "origin"

var (
	// ErrRemoteNotFound означает, что удаленного репозитория не существует
	ErrRemoteNotFound = errors.New("remote repository not found")

	// ErrNoRemote возвращается для пустого адреса репозитория
	ErrNoRemote = errors.New("project has no remote repository")
)

// Options configure authentication and commit identity.
type Options struct {
	Logger        *slog.Logger
	Token         string // пароль для HTTPS (токен git-хостинга)
	SSHKeyPath    string // приватный ключ для ssh-адресов; пусто = ssh-agent
	SSHPassphrase string
	AuthorName    string
	AuthorEmail   string
	CommitMessage string
	KnownHosts    []string // файлы known_hosts; пусто = ~/.ssh/known_hosts
}

// Git syncs working copies with go-git. No git binary is needed.
type Git struct {
	opts Options
	now  func() time.Time
}

// New создает синхронизатор
func New(opts Options) *Git {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AuthorName == "" {
		opts.AuthorName = "studysync"
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = "studysync@localhost"
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = "Sync local changes"
	}
	return &Git{opts: opts, now: time.Now}
}

// Sync clones remoteURL into dir when dir holds no repository. Otherwise it
// commits local changes, pulls and pushes. "Already up to date" counts as success.
func (g *Git) Sync(ctx context.Context, remoteURL, dir string) error {
	if remoteURL == "" {
		return ErrNoRemote
	}
	if dir == "" {
		return fmt.Errorf("no local folder chosen")
	}

	auth, err := g.auth(remoteURL)
	if err != nil {
		return err
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return g.clone(ctx, remoteURL, dir, auth)
	}
	if err != nil {
		return fmt.Errorf("failed to open repository %s: %w", dir, err)
	}

	if err := setOrigin(repo, remoteURL); err != nil {
		return err
	}
	if err := g.commitAll(repo); err != nil {
		return err
	}
	if err := g.pull(ctx, repo, auth); err != nil {
		return err
	}
	return g.push(ctx, repo, auth)
}

func (g *Git) clone(ctx context.Context, remoteURL, dir string, auth transport.AuthMethod) error {
	g.opts.Logger.Debug("cloning repository", "remote", remoteURL, "dir", dir)

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        remoteURL,
		RemoteName: remoteName,
		Auth:       auth,
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		// пустой удаленный репозиторий: начинаем локальный и публикуем то, что уже лежит в каталоге
		_ = os.RemoveAll(filepath.Join(dir, ".git"))
		repo, err := git.PlainInit(dir, false)
		if err != nil {
			return fmt.Errorf("failed to init repository: %w", err)
		}
		if err := setOrigin(repo, remoteURL); err != nil {
			return err
		}
		if err := g.commitAll(repo); err != nil {
			return err
		}
		return g.push(ctx, repo, auth)
	}
	return mapErr("clone", err)
}

func (g *Git) commitAll(repo *git.Repository) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	_, err = wt.Commit(g.opts.CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  g.opts.AuthorName,
			Email: g.opts.AuthorEmail,
			When:  g.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	g.opts.Logger.Debug("committed local changes")
	return nil
}

func (g *Git) pull(ctx context.Context, repo *git.Repository, auth transport.AuthMethod) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: remoteName, Auth: auth})
	switch {
	case err == nil, errors.Is(err, git.NoErrAlreadyUpToDate), errors.Is(err, transport.ErrEmptyRemoteRepository):
		return nil
	default:
		return mapErr("pull", err)
	}
}

func (g *Git) push(ctx context.Context, repo *git.Repository, auth transport.AuthMethod) error {
	err := repo.PushContext(ctx, &git.PushOptions{RemoteName: remoteName, Auth: auth})
	if err == nil || errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return mapErr("push", err)
}

// setOrigin points origin at remoteURL, replacing a stale address.
func setOrigin(repo *git.Repository, remoteURL string) error {
	remote, err := repo.Remote(remoteName)
	if err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 && urls[0] == remoteURL {
			return nil
		}
		if err := repo.DeleteRemote(remoteName); err != nil {
			return fmt.Errorf("failed to reset remote: %w", err)
		}
	} else if !errors.Is(err, git.ErrRemoteNotFound) {
		return fmt.Errorf("failed to read remote: %w", err)
	}

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: remoteName, URLs: []string{remoteURL}})
	if err != nil {
		return fmt.Errorf("failed to set remote: %w", err)
	}
	return nil
}

func mapErr(op string, err error) error {
	if errors.Is(err, transport.ErrRepositoryNotFound) {
		return fmt.Errorf("%s: %w", op, ErrRemoteNotFound)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// auth выбирает способ аутентификации по схеме адреса
func (g *Git) auth(remoteURL string) (transport.AuthMethod, error) {
	ep, err := transport.NewEndpoint(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url %q: %w", remoteURL, err)
	}

	switch ep.Protocol {
	case "http", "https":
		if g.opts.Token == "" {
			return nil, nil
		}
		return &githttp.BasicAuth{Username: "oauth2", Password: g.opts.Token}, nil
	case "ssh":
		if g.opts.SSHKeyPath == "" {
			return nil, nil
		}
		user := ep.User
		if user == "" {
			user = "git"
		}
		keys, err := gitssh.NewPublicKeysFromFile(user, g.opts.SSHKeyPath, g.opts.SSHPassphrase)
		if err != nil {
			return nil, fmt.Errorf("failed to load ssh key: %w", err)
		}
		callback, err := knownhosts.New(g.knownHosts()...)
		if err != nil {
			return nil, fmt.Errorf("failed to load known_hosts: %w", err)
		}
		keys.HostKeyCallback = callback
		return keys, nil
	default:
		return nil, nil
	}
}

func (g *Git) knownHosts() []string {
	if len(g.opts.KnownHosts) > 0 {
		return g.opts.KnownHosts
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".ssh", "known_hosts")}
}
