package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// SchemaVersioner сообщает версию схемы БД; используется как проверка доступности БД
type SchemaVersioner interface {
	Version(ctx context.Context) (int64, error)
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db      SchemaVersioner
	version string
	responder
}

// NewHealthHandler создает новый handler для health check
// db может быть nil, тогда БД не проверяется
func NewHealthHandler(logger *slog.Logger, version string, db SchemaVersioner) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		version:   version,
		db:        db,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	SchemaVersion int64  `json:"schema_version,omitempty"`
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	if h.db != nil {
		version, err := h.db.Version(r.Context())
		if err != nil {
			h.logger.ErrorContext(r.Context(), "database health check failed", slog.Any("error", err))
			resp.Status = "unavailable"
			h.sendJSON(w, resp, http.StatusServiceUnavailable)
			return
		}
		resp.SchemaVersion = version
	}

	h.sendJSON(w, resp, http.StatusOK)
}
