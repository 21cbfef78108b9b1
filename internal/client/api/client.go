package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/internal/models"
	pkgapi "github.com/iudanet/studysync/pkg/api"
)

// DefaultMaximumAllowedTime is the maximum_allowed_time sent with every new study.
const DefaultMaximumAllowedTime = 13

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The client may be shared
// between tokens; it carries no per-token state.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.req.HTTPClient = hc }
}

// WithMaximumAllowedTime overrides DefaultMaximumAllowedTime. Non-positive values are ignored.
func WithMaximumAllowedTime(minutes int) Option {
	return func(c *Client) {
		if minutes > 0 {
			c.maxAllowedTime = minutes
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.req.Logger = l }
}

// Client представляет HTTP клиент платформы исследований
// Один экземпляр привязан к одному токену; при смене токена создается новый клиент
type Client struct {
	req            *Requester
	clientURL      string
	token          string
	maxAllowedTime int
}

// NewClient создает новый API клиент
// baseURL - адрес API (https://.../api/v1), clientURL - адрес веб-клиента для ссылок на исследования
func NewClient(baseURL, clientURL, token string, opts ...Option) *Client {
	c := &Client{
		clientURL:      strings.TrimRight(clientURL, "/"),
		token:          token,
		maxAllowedTime: DefaultMaximumAllowedTime,
		req: &Requester{
			BaseURL:    strings.TrimRight(baseURL, "/"),
			HTTPClient: NewHTTPClient(DefaultTimeout),
		},
	}
	c.req.SetAuth = func(r *http.Request) {
		if c.token != "" {
			r.Header.Set("Authorization", "Bearer "+c.token)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token the client was created with.
func (c *Client) Token() string {
	return c.token
}

// StudyURL returns the web client page of a study.
func (c *Client) StudyURL(id int64) string {
	return fmt.Sprintf("%s/studies/%d/", c.clientURL, id)
}

// FetchCurrentUser получает профиль владельца токена
// В ответ добавляется исходный токен, чтобы профиль можно было сохранить целиком
func (c *Client) FetchCurrentUser(ctx context.Context) (*pkgapi.UserPayload, error) {
	var resp pkgapi.UserPayload
	if err := c.req.Do(ctx, http.MethodGet, "/users/me/", nil, http.StatusOK, &resp); err != nil {
		return nil, fmt.Errorf("fetch current user failed: %w", err)
	}
	resp.Token = c.token
	return &resp, nil
}

// CalculateTotalCost возвращает полную стоимость исследования в основной валюте
func (c *Client) CalculateTotalCost(ctx context.Context, participants int, reward decimal.Decimal) (decimal.Decimal, error) {
	req := pkgapi.CostRequest{
		StudyType:            pkgapi.StudyTypeSingle,
		Reward:               models.ToMinorUnits(reward),
		TotalAvailablePlaces: participants,
	}
	var resp pkgapi.CostResponse
	if err := c.req.Do(ctx, http.MethodPost, "/study-cost-calculator/", req, http.StatusOK, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("cost calculation failed: %w", err)
	}
	return models.FromMinorUnits(resp.TotalCost), nil
}

// CreateStudy создает исследование и дополняет ответ ссылкой на страницу веб-клиента
func (c *Client) CreateStudy(ctx context.Context, draft models.StudyDraft) (*pkgapi.Study, error) {
	req := pkgapi.CreateStudyRequest{
		Name:                    draft.Title,
		InternalName:            draft.InternalName,
		Description:             draft.Description,
		ExternalStudyURL:        draft.ExternalStudyURL,
		ProlificIDOption:        "url_parameters",
		CompletionCode:          draft.CompletionCode,
		CompletionOption:        "url",
		CallbackURL:             fmt.Sprintf("%s/submissions/complete?cc=%s", c.clientURL, draft.CompletionCode),
		TotalAvailablePlaces:    draft.Participants,
		EstimatedCompletionTime: draft.DurationMinutes,
		MaximumAllowedTime:      c.maxAllowedTime,
		Reward:                  models.ToMinorUnits(draft.Reward),
		DeviceCompatibility:     []string{"mobile", "desktop", "tablet"},
		PeripheralRequirements:  []string{},
		EligibilityRequirements: []any{},
		StudyType:               pkgapi.StudyTypeSingle,
	}

	var study pkgapi.Study
	if err := c.req.Do(ctx, http.MethodPost, "/studies/", req, http.StatusCreated, &study); err != nil {
		return nil, fmt.Errorf("create study failed: %w", err)
	}
	study.SetURL(c.StudyURL(study.ID))
	return &study, nil
}

// TransitionStudy публикует исследование
func (c *Client) TransitionStudy(ctx context.Context, remoteID int64) (*pkgapi.Study, error) {
	req := pkgapi.TransitionRequest{Action: pkgapi.ActionPublish}
	path := fmt.Sprintf("/studies/%d/transition/", remoteID)

	var study pkgapi.Study
	if err := c.req.Do(ctx, http.MethodPost, path, req, http.StatusOK, &study); err != nil {
		return nil, fmt.Errorf("transition study %d failed: %w", remoteID, err)
	}
	study.SetURL(c.StudyURL(study.ID))
	return &study, nil
}

// GetStudy получает исследование по удаленному идентификатору
func (c *Client) GetStudy(ctx context.Context, remoteID int64) (*pkgapi.Study, error) {
	var study pkgapi.Study
	path := fmt.Sprintf("/studies/%d/", remoteID)
	if err := c.req.Do(ctx, http.MethodGet, path, nil, http.StatusOK, &study); err != nil {
		return nil, fmt.Errorf("get study %d failed: %w", remoteID, err)
	}
	study.SetURL(c.StudyURL(study.ID))
	return &study, nil
}
