package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/studysync/internal/server/storage"
	"github.com/iudanet/studysync/internal/validation"
	"github.com/iudanet/studysync/pkg/api"
)

// defaultCurrency валюта аккаунта, если она не указана при первом запросе токена
const defaultCurrency = "GBP"

// TokenHandler выдает sandbox-токены. Пароля нет: sandbox предназначен для локальной разработки
type TokenHandler struct {
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
	responder
}

// NewTokenHandler создает новый handler для выдачи токенов
func NewTokenHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *TokenHandler {
	return &TokenHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
	}
}

// Issue обрабатывает POST /api/v1/sandbox/tokens
// Создает пользователя при первом запросе и возвращает access token
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode token request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		h.sendError(w, "currency_code must be a 3-letter ISO code", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, storage.ErrUserNotFound) {
		user, err = h.createUser(r, req, currency)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve user", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "token issued", slog.String("user_id", user.ID), slog.String("username", user.Username))

	h.sendJSON(w, api.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}

func (h *TokenHandler) createUser(r *http.Request, req api.TokenRequest, currency string) (*storage.User, error) {
	ctx := r.Context()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.Username
	}

	user := &storage.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Name:         name,
		CurrencyCode: currency,
		CreatedAt:    time.Now().UTC(),
	}

	err := h.userStorage.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrUserAlreadyExists) {
		// параллельный запрос успел создать пользователя
		return h.userStorage.GetUserByUsername(ctx, req.Username)
	}
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "user created", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}
