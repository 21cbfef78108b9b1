package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type versionFunc func(ctx context.Context) (int64, error)

func (f versionFunc) Version(ctx context.Context) (int64, error) { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		db         SchemaVersioner
		name       string
		wantStatus string
		wantSchema int64
		wantCode   int
	}{
		{
			name:       "without database",
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "database available",
			db:         versionFunc(func(context.Context) (int64, error) { return 2, nil }),
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantSchema: 2,
		},
		{
			name:       "database unavailable",
			db:         versionFunc(func(context.Context) (int64, error) { return 0, errors.New("database is closed") }),
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(setupTestLogger(), "1.2.3", tt.db)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			w := httptest.NewRecorder()

			handler.Health(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			resp := decodeBody[HealthResponse](t, w)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "1.2.3", resp.Version)
			assert.Equal(t, tt.wantSchema, resp.SchemaVersion)
		})
	}
}
