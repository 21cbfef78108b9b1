package session

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/studysync/internal/models"
	"github.com/iudanet/studysync/internal/validation"
)

// DefaultLoginURL is the platform login page used by AuthURL.
const DefaultLoginURL = "https://test.prolific.co/auth/accounts/login/"

// ManagerOptions configure the first session of the process.
type ManagerOptions struct {
	InitialToken string // токен из конфигурации, имеет приоритет над LastUser
	LastUser     string // пользователь из users.json, чей токен берется при старте
	LoginURL     string
}

// Manager owns the single active session of the process. Current initializes
// it lazily; Login, Refresh and Logout replace it.
type Manager struct {
	current *Session
	deps    Deps
	opts    ManagerOptions
	mu      sync.Mutex
}

// NewManager создает менеджер сессий
func NewManager(deps Deps, opts ManagerOptions) *Manager {
	if opts.LoginURL == "" {
		opts.LoginURL = DefaultLoginURL
	}
	return &Manager{deps: deps, opts: opts}
}

// Current returns the active session, creating it on first use.
func (m *Manager) Current(ctx context.Context) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		m.current = New(ctx, m.initialToken(), m.deps)
	}
	return m.current
}

func (m *Manager) initialToken() string {
	if m.opts.InitialToken != "" {
		return m.opts.InitialToken
	}
	if m.opts.LastUser == "" || m.deps.Users == nil {
		return ""
	}
	cred, err := m.deps.Users.Get(m.opts.LastUser)
	if err != nil {
		return ""
	}
	return cred.Token
}

// Login authenticates with a token or with the username of a known user.
// Only values shaped like a username are looked up in the user store.
// On failure the previous session stays active and the error is
// ErrConnectionFailed or ErrUnauthorized.
func (m *Manager) Login(ctx context.Context, tokenOrUsername string) (*Session, error) {
	token := tokenOrUsername
	if m.deps.Users != nil && validation.LooksLikeUsername(tokenOrUsername) {
		if cred, err := m.deps.Users.Get(tokenOrUsername); err == nil {
			token = cred.Token
		}
	}

	s := New(ctx, token, m.deps)
	if !s.Authenticated() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoClient
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s, nil
}

// Refresh replaces the active session with a new one around the same token.
func (m *Manager) Refresh(ctx context.Context) *Session {
	token := m.Current(ctx).Token()
	s := New(ctx, token, m.deps)

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s
}

// Logout replaces the active session with an anonymous one. Known users stay in the store.
func (m *Manager) Logout(ctx context.Context) *Session {
	s := New(ctx, "", m.deps)

	m.mu.Lock()
	m.current = s
	m.opts.InitialToken = ""
	m.opts.LastUser = ""
	m.mu.Unlock()
	return s
}

// AuthURL returns the login page and a fresh random state for the browser flow.
func (m *Manager) AuthURL() (string, string) {
	state := uuid.NewString()
	u, err := url.Parse(m.opts.LoginURL)
	if err != nil {
		return m.opts.LoginURL, state
	}
	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), state
}

// KnownUsers returns the stored credentials in username order.
func (m *Manager) KnownUsers() ([]models.Credential, error) {
	if m.deps.Users == nil {
		return nil, nil
	}
	keys, err := m.deps.Users.Keys()
	if err != nil {
		return nil, err
	}
	users := make([]models.Credential, 0, len(keys))
	for _, k := range keys {
		cred, err := m.deps.Users.Get(k)
		if err != nil {
			return nil, err
		}
		users = append(users, cred)
	}
	return users, nil
}
