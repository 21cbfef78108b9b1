package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iudanet/studysync/internal/models"
	"github.com/iudanet/studysync/internal/server/storage"
	"github.com/iudanet/studysync/pkg/api"
)

// transitions отображает action в целевой статус
var transitions = map[string]models.StudyStatus{
	api.ActionPublish:  models.StatusActivated,
	api.ActionStart:    models.StatusActivated,
	api.ActionPause:    models.StatusPaused,
	api.ActionStop:     models.StatusAwaitingReview,
	api.ActionComplete: models.StatusCompleted,
}

var hundred = decimal.NewFromInt(100)

// StudyHandler обрабатывает калькулятор стоимости и жизненный цикл исследований
type StudyHandler struct {
	studyStorage storage.StudyStorage
	now          func() time.Time
	feePercent   decimal.Decimal
	responder
}

// NewStudyHandler создает новый handler исследований
// feePercent - комиссия платформы в процентах от суммы вознаграждений
func NewStudyHandler(logger *slog.Logger, studyStorage storage.StudyStorage, feePercent decimal.Decimal) *StudyHandler {
	return &StudyHandler{
		responder:    responder{logger: logger},
		studyStorage: studyStorage,
		feePercent:   feePercent,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// StudyResponse представляет исследование в ответах API
type StudyResponse struct {
	DateCreated             time.Time `json:"date_created"`
	UpdatedAt               time.Time `json:"updated_at"`
	Name                    string    `json:"name"`
	InternalName            string    `json:"internal_name"`
	Description             string    `json:"description"`
	ExternalStudyURL        string    `json:"external_study_url"`
	CompletionCode          string    `json:"completion_code"`
	CallbackURL             string    `json:"callback_url,omitempty"`
	StudyType               string    `json:"study_type"`
	Status                  string    `json:"status"`
	DeviceCompatibility     []string  `json:"device_compatibility"`
	ID                      int64     `json:"id"`
	Reward                  int64     `json:"reward"`
	TotalAvailablePlaces    int       `json:"total_available_places"`
	EstimatedCompletionTime int       `json:"estimated_completion_time"`
	MaximumAllowedTime      int       `json:"maximum_allowed_time"`
}

func newStudyResponse(s *storage.Study) StudyResponse {
	devices := s.DeviceCompatibility
	if devices == nil {
		devices = []string{}
	}
	return StudyResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		InternalName:            s.InternalName,
		Description:             s.Description,
		ExternalStudyURL:        s.ExternalStudyURL,
		CompletionCode:          s.CompletionCode,
		CallbackURL:             s.CallbackURL,
		StudyType:               s.StudyType,
		Status:                  s.Status,
		DeviceCompatibility:     devices,
		Reward:                  s.Reward,
		TotalAvailablePlaces:    s.TotalAvailablePlaces,
		EstimatedCompletionTime: s.EstimatedCompletionTime,
		MaximumAllowedTime:      s.MaximumAllowedTime,
		DateCreated:             s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

// TotalCost считает reward * places * (1 + fee/100) в минимальных единицах валюты
func TotalCost(reward int64, places int, feePercent decimal.Decimal) decimal.Decimal {
	gross := decimal.NewFromInt(reward).Mul(decimal.NewFromInt(int64(places)))
	return gross.Mul(hundred.Add(feePercent)).Div(hundred).Round(0)
}

// Cost обрабатывает POST /api/v1/study-cost-calculator/
func (h *StudyHandler) Cost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode cost request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Reward < 0 || req.TotalAvailablePlaces < 0 {
		h.sendError(w, "reward and total_available_places must not be negative", http.StatusBadRequest)
		return
	}

	h.sendJSON(w, api.CostResponse{
		TotalCost: TotalCost(req.Reward, req.TotalAvailablePlaces, h.feePercent),
	}, http.StatusOK)
}

// Create обрабатывает POST /api/v1/studies/
// Новое исследование всегда создается в статусе UNPUBLISHED
func (h *StudyHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req api.CreateStudyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode study request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.sendError(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Reward < 0 || req.TotalAvailablePlaces < 0 || req.EstimatedCompletionTime < 0 || req.MaximumAllowedTime < 0 {
		h.sendError(w, "numeric fields must not be negative", http.StatusBadRequest)
		return
	}

	studyType := req.StudyType
	if studyType == "" {
		studyType = api.StudyTypeSingle
	}

	now := h.now()
	study := &storage.Study{
		OwnerID:                 userID,
		Name:                    req.Name,
		InternalName:            req.InternalName,
		Description:             req.Description,
		ExternalStudyURL:        req.ExternalStudyURL,
		CompletionCode:          req.CompletionCode,
		CallbackURL:             req.CallbackURL,
		StudyType:               studyType,
		Status:                  string(models.StatusUnpublished),
		DeviceCompatibility:     req.DeviceCompatibility,
		Reward:                  req.Reward,
		TotalAvailablePlaces:    req.TotalAvailablePlaces,
		EstimatedCompletionTime: req.EstimatedCompletionTime,
		MaximumAllowedTime:      req.MaximumAllowedTime,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := h.studyStorage.CreateStudy(ctx, study); err != nil {
		h.logger.ErrorContext(ctx, "failed to create study", slog.String("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "study created",
		slog.String("user_id", userID),
		slog.Int64("study_id", study.ID))

	h.sendJSON(w, newStudyResponse(study), http.StatusCreated)
}

// Get обрабатывает GET /api/v1/studies/{id}/
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	study, ok := h.loadStudy(w, r)
	if !ok {
		return
	}
	h.sendJSON(w, newStudyResponse(study), http.StatusOK)
}

// Transition обрабатывает POST /api/v1/studies/{id}/transition/
// Статус может двигаться только вперед, кроме переключения ACTIVATED <-> PAUSED
func (h *StudyHandler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TransitionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode transition request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	next, known := transitions[strings.ToUpper(req.Action)]
	if !known {
		h.sendError(w, "unknown action: "+req.Action, http.StatusBadRequest)
		return
	}

	study, ok := h.loadStudy(w, r)
	if !ok {
		return
	}

	current := models.StudyStatus(study.Status)
	if !current.CanTransitionTo(next) {
		h.logger.WarnContext(ctx, "rejected study transition",
			slog.Int64("study_id", study.ID),
			slog.String("from", study.Status),
			slog.String("to", string(next)))
		h.sendError(w, "cannot move study from "+study.Status+" to "+string(next), http.StatusConflict)
		return
	}

	updatedAt := h.now()
	if err := h.studyStorage.UpdateStudyStatus(ctx, study.OwnerID, study.ID, string(next), updatedAt); err != nil {
		h.logger.ErrorContext(ctx, "failed to update study status", slog.Int64("study_id", study.ID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	study.Status = string(next)
	study.UpdatedAt = updatedAt

	h.logger.InfoContext(ctx, "study transitioned",
		slog.Int64("study_id", study.ID),
		slog.String("from", string(current)),
		slog.String("to", study.Status))

	h.sendJSON(w, newStudyResponse(study), http.StatusOK)
}

// loadStudy читает {id} из пути и загружает исследование текущего пользователя.
// При ошибке ответ уже отправлен.
func (h *StudyHandler) loadStudy(w http.ResponseWriter, r *http.Request) (*storage.Study, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "authentication required", http.StatusUnauthorized)
		return nil, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, "invalid study id", http.StatusBadRequest)
		return nil, false
	}

	study, err := h.studyStorage.GetStudy(ctx, userID, id)
	if err != nil {
		if errors.Is(err, storage.ErrStudyNotFound) {
			h.sendError(w, "study not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get study", slog.Int64("study_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return study, true
}
