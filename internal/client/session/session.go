// Package session holds the identity the CLI acts under against the platform.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/internal/client/api"
	"github.com/iudanet/studysync/internal/client/storage"
	"github.com/iudanet/studysync/internal/models"
	pkgapi "github.com/iudanet/studysync/pkg/api"
)

var (
	// ErrConnectionFailed означает, что платформа недоступна
	ErrConnectionFailed = errors.New("failed to connect to the platform, no network?")

	// ErrUnauthorized означает, что платформа отвергла токен
	ErrUnauthorized = errors.New("the platform rejected the token")

	// ErrNoClient возвращается операциями, которым нужна аутентифицированная сессия
	ErrNoClient = errors.New("not logged in")

	// ErrNotCreated возвращается при публикации проекта без удаленного id
	ErrNotCreated = errors.New("project has not been created on the platform")

	// ErrNoRepoHost возвращается поиском, если git-хостинг не настроен
	ErrNoRepoHost = errors.New("git hosting is not configured")
)

//go:generate moq -out platform_mock.go . Platform RepoHost

// Platform is the part of the platform client a session uses.
type Platform interface {
	Token() string
	FetchCurrentUser(ctx context.Context) (*pkgapi.UserPayload, error)
	CalculateTotalCost(ctx context.Context, participants int, reward decimal.Decimal) (decimal.Decimal, error)
	CreateStudy(ctx context.Context, draft models.StudyDraft) (*pkgapi.Study, error)
	TransitionStudy(ctx context.Context, remoteID int64) (*pkgapi.Study, error)
	GetStudy(ctx context.Context, remoteID int64) (*pkgapi.Study, error)
}

// RepoHost is the search side of the git hosting client.
type RepoHost interface {
	SearchUsers(ctx context.Context, query string) ([]pkgapi.RepoUser, error)
	SearchNamespaces(ctx context.Context, query string) ([]pkgapi.Namespace, error)
}

// ClientFactory builds a platform client bound to token.
type ClientFactory func(token string) Platform

// Deps are the collaborators shared by every session of a process.
type Deps struct {
	NewClient  ClientFactory
	Users      storage.UserStore
	Projects   storage.ProjectStore
	RepoHost   RepoHost // может быть nil
	Logger     *slog.Logger
	RememberMe bool
}

// Session is one identity context. Sessions are replaced, not patched: after
// SetToken every derived field comes from the same identity fetch.
type Session struct {
	client        Platform
	startErr      error
	deps          Deps
	token         string
	username      string
	userID        string
	displayName   string
	currencyCode  string
	authenticated bool
}

// New создает сессию и сразу пытается аутентифицироваться. Никогда не возвращает ошибку:
// после создания нужно проверить Authenticated
func New(ctx context.Context, token string, deps Deps) *Session {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	s := &Session{deps: deps}
	s.SetToken(ctx, token)
	return s
}

// SetToken stores token, drops the cached client and restarts the session.
func (s *Session) SetToken(ctx context.Context, token string) {
	s.token = token
	s.client = nil
	s.Start(ctx)
}

// Start fetches the identity behind the token. Failures leave the session
// anonymous; the cause is kept for Err.
func (s *Session) Start(ctx context.Context) {
	s.authenticated = false
	s.username, s.userID, s.displayName, s.currencyCode = "", "", "", ""
	s.startErr = nil

	if s.token == "" {
		s.client = nil
		return
	}

	client := s.client
	if client == nil {
		client = s.deps.NewClient(s.token)
	}

	payload, err := client.FetchCurrentUser(ctx)
	if err != nil {
		s.client = nil
		s.startErr = classify(err)
		s.deps.Logger.Warn("failed to start session", "error", err)
		return
	}

	s.client = client
	s.username = payload.Username
	s.userID = payload.ID
	s.displayName = payload.Name
	s.currencyCode = payload.CurrencyCode
	s.authenticated = true
	s.deps.Logger.Debug("session started", "username", s.username)

	if s.deps.RememberMe {
		s.remember(payload)
	}
}

// remember сохраняет учетные данные; ошибки записи не ломают сессию
func (s *Session) remember(payload *pkgapi.UserPayload) {
	if s.deps.Users == nil || payload.Username == "" {
		return
	}
	cred := models.Credential{
		Username:     payload.Username,
		Token:        s.token,
		UserID:       payload.ID,
		DisplayName:  payload.Name,
		AvatarPath:   payload.Avatar,
		CurrencyCode: payload.CurrencyCode,
	}
	if existing, err := s.deps.Users.Get(payload.Username); err == nil && cred.AvatarPath == "" {
		cred.AvatarPath = existing.AvatarPath
	}
	if err := s.deps.Users.Set(cred.Username, cred); err != nil {
		s.deps.Logger.Warn("failed to remember user", "username", cred.Username, "error", err)
		return
	}
	if err := s.deps.Users.Save(); err != nil {
		s.deps.Logger.Warn("failed to save known users", "error", err)
	}
}

func classify(err error) error {
	if api.IsUnauthorized(err) {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
}

// Authenticated reports whether the last identity fetch succeeded.
func (s *Session) Authenticated() bool { return s.authenticated }

// Token returns the session token, possibly empty.
func (s *Session) Token() string { return s.token }

// Username returns the authenticated username or "".
func (s *Session) Username() string { return s.username }

// UserID returns the platform id of the user or "".
func (s *Session) UserID() string { return s.userID }

// Err returns why the last Start left the session anonymous, if it had a token.
func (s *Session) Err() error { return s.startErr }

// User returns the current user as seen by the platform now. Any failure
// yields the anonymous user.
func (s *Session) User(ctx context.Context) models.User {
	if s.client == nil {
		return models.User{}
	}
	payload, err := s.client.FetchCurrentUser(ctx)
	if err != nil {
		s.deps.Logger.Debug("failed to fetch user", "error", err)
		return models.User{}
	}
	cred := models.Credential{
		Username:     payload.Username,
		Token:        s.token,
		UserID:       payload.ID,
		DisplayName:  payload.Name,
		AvatarPath:   payload.Avatar,
		CurrencyCode: payload.CurrencyCode,
	}
	if s.deps.Users != nil && cred.AvatarPath == "" {
		if known, err := s.deps.Users.Get(cred.Username); err == nil {
			cred.AvatarPath = known.AvatarPath
		}
	}
	return models.User{Credential: cred}
}

// CalculateTotalPrice returns the cost of a study as "{amount}{symbol}", or ""
// without a client or when the calculator fails.
func (s *Session) CalculateTotalPrice(ctx context.Context, participants int, reward decimal.Decimal) string {
	if s.client == nil {
		return ""
	}
	total, err := s.client.CalculateTotalCost(ctx, participants, reward)
	if err != nil {
		s.deps.Logger.Warn("failed to calculate price", "error", err)
		return ""
	}
	return models.FormatPrice(total, s.currencyCode)
}

// CreateProject создает исследование на платформе и сохраняет запись под localID.
// Локальное состояние уже известной записи (каталог, время синхронизации) сохраняется
func (s *Session) CreateProject(ctx context.Context, localID string, draft models.StudyDraft) (*models.Project, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	study, err := s.client.CreateStudy(ctx, draft)
	if err != nil {
		return nil, err
	}

	project := models.ProjectFromStudy(localID, study)
	if known, err := s.deps.Projects.Get(localID); err == nil {
		project = known.WithStudy(study)
	}

	if err := s.store(project); err != nil {
		return project, err
	}
	return project, nil
}

// Publish moves the project's study to the active state.
func (s *Session) Publish(ctx context.Context, project *models.Project) (*models.Project, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	if project == nil || !project.Created() {
		return nil, ErrNotCreated
	}
	study, err := s.client.TransitionStudy(ctx, *project.RemoteID)
	if err != nil {
		return nil, err
	}

	updated := project.WithStudy(study)
	if err := s.store(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// GetProject rebuilds a project from the local project store. No network call is made.
func (s *Session) GetProject(_ context.Context, localID string) (*models.Project, error) {
	project, err := s.deps.Projects.Get(localID)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// RefreshProject re-reads the remote fields of a stored project from the platform.
func (s *Session) RefreshProject(ctx context.Context, localID string) (*models.Project, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	project, err := s.GetProject(ctx, localID)
	if err != nil {
		return nil, err
	}
	if !project.Created() {
		return nil, ErrNotCreated
	}
	study, err := s.client.GetStudy(ctx, *project.RemoteID)
	if err != nil {
		return nil, err
	}

	updated := project.WithStudy(study)
	if err := s.store(updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *Session) store(project *models.Project) error {
	if err := s.deps.Projects.Set(project.LocalID, *project); err != nil {
		return fmt.Errorf("failed to store project: %w", err)
	}
	if err := s.deps.Projects.Save(); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// FindUsers searches users on the git hosting service.
func (s *Session) FindUsers(ctx context.Context, query string) ([]pkgapi.RepoUser, error) {
	if s.deps.RepoHost == nil {
		return nil, ErrNoRepoHost
	}
	return s.deps.RepoHost.SearchUsers(ctx, query)
}

// GetNamespace returns the namespace whose full path equals name, or storage.ErrNotFound.
func (s *Session) GetNamespace(ctx context.Context, name string) (*pkgapi.Namespace, error) {
	if s.deps.RepoHost == nil {
		return nil, ErrNoRepoHost
	}
	namespaces, err := s.deps.RepoHost.SearchNamespaces(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range namespaces {
		if namespaces[i].FullPath == name || namespaces[i].Path == name {
			return &namespaces[i], nil
		}
	}
	return nil, fmt.Errorf("namespace %q: %w", name, storage.ErrNotFound)
}

// FindNamespaces searches user and group namespaces on the git hosting service.
func (s *Session) FindNamespaces(ctx context.Context, query string) ([]pkgapi.Namespace, error) {
	if s.deps.RepoHost == nil {
		return nil, ErrNoRepoHost
	}
	return s.deps.RepoHost.SearchNamespaces(ctx, query)
}
