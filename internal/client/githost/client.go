// Package githost talks to a GitLab v4 compatible git hosting service where
// study repositories live.
package githost

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	clientapi "github.com/iudanet/studysync/internal/client/api"
	"github.com/iudanet/studysync/pkg/api"
)

// Client is a minimal GitLab API client authenticated with a personal access token.
type Client struct {
	req   *clientapi.Requester
	token string
}

// NewClient создает клиент git-хостинга; baseURL вида https://gitlab.com/api/v4
func NewClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	c := &Client{
		token: token,
		req: &clientapi.Requester{
			BaseURL:    strings.TrimRight(baseURL, "/"),
			HTTPClient: clientapi.NewHTTPClient(timeout),
			Logger:     logger,
		},
	}
	c.req.SetAuth = func(r *http.Request) {
		if c.token != "" {
			r.Header.Set("PRIVATE-TOKEN", c.token)
		}
	}
	return c
}

// Token returns the access token, also used as the git HTTPS password.
func (c *Client) Token() string {
	return c.token
}

// GetProject получает проект по пути "namespace/name"
func (c *Client) GetProject(ctx context.Context, pathWithNamespace string) (*api.RepoProject, error) {
	var project api.RepoProject
	path := "/projects/" + url.PathEscape(pathWithNamespace)
	if err := c.req.Do(ctx, http.MethodGet, path, nil, http.StatusOK, &project); err != nil {
		return nil, fmt.Errorf("get project %s failed: %w", pathWithNamespace, err)
	}
	return &project, nil
}

// ForkProject создает форк проекта в пространстве имен namespace
// Пустой namespace означает личное пространство владельца токена
func (c *Client) ForkProject(ctx context.Context, pathWithNamespace, namespace string) (*api.RepoProject, error) {
	var project api.RepoProject
	path := "/projects/" + url.PathEscape(pathWithNamespace) + "/fork"
	req := api.ForkRequest{NamespacePath: namespace}
	if err := c.req.Do(ctx, http.MethodPost, path, req, http.StatusCreated, &project); err != nil {
		return nil, fmt.Errorf("fork project %s failed: %w", pathWithNamespace, err)
	}
	return &project, nil
}

// CreateProject создает пустой приватный проект в личном пространстве
func (c *Client) CreateProject(ctx context.Context, name string) (*api.RepoProject, error) {
	var project api.RepoProject
	req := api.CreateRepoRequest{Name: name, Path: name, Visibility: "private"}
	if err := c.req.Do(ctx, http.MethodPost, "/projects", req, http.StatusCreated, &project); err != nil {
		return nil, fmt.Errorf("create project %s failed: %w", name, err)
	}
	return &project, nil
}

// SearchNamespaces ищет пространства имен (пользователи и группы)
func (c *Client) SearchNamespaces(ctx context.Context, query string) ([]api.Namespace, error) {
	var namespaces []api.Namespace
	path := "/namespaces?search=" + url.QueryEscape(query)
	if err := c.req.Do(ctx, http.MethodGet, path, nil, http.StatusOK, &namespaces); err != nil {
		return nil, fmt.Errorf("search namespaces failed: %w", err)
	}
	return namespaces, nil
}

// SearchUsers ищет пользователей
func (c *Client) SearchUsers(ctx context.Context, query string) ([]api.RepoUser, error) {
	var users []api.RepoUser
	path := "/users?search=" + url.QueryEscape(query)
	if err := c.req.Do(ctx, http.MethodGet, path, nil, http.StatusOK, &users); err != nil {
		return nil, fmt.Errorf("search users failed: %w", err)
	}
	return users, nil
}
