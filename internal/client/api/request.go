package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	pkgapi "github.com/iudanet/studysync/pkg/api"
)

// maxResponseSize ограничивает размер читаемого ответа
const maxResponseSize = 10 << 20

// DefaultTimeout is the HTTP timeout used unless overridden.
const DefaultTimeout = 30 * time.Second

// NewHTTPClient returns an http.Client that keeps the Authorization header across redirects.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Ограничиваем количество редиректов
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			// Копируем заголовки авторизации при редиректе
			for _, h := range []string{"Authorization", "PRIVATE-TOKEN"} {
				if v := via[0].Header.Get(h); v != "" {
					req.Header.Set(h, v)
				}
			}
			return nil
		},
	}
}

// Requester performs JSON requests against one service. Both the platform client
// and the git hosting client are built on it.
type Requester struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	SetAuth    func(*http.Request) // nil = без авторизации
	BaseURL    string
}

// Do sends body as JSON and decodes the reply into result. Any status other than
// want is returned as *Error; transport failures wrap ErrUnreachable.
func (r *Requester) Do(ctx context.Context, method, path string, body any, want int, result any) error {
	url := r.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.SetAuth != nil {
		r.SetAuth(req)
	}

	start := time.Now()
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.logger().Debug("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	r.logger().Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	// Читаем тело ответа
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != want {
		apiErr := &Error{StatusCode: resp.StatusCode, Body: string(respBody)}
		var errResp pkgapi.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (r *Requester) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
