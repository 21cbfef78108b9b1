package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/studysync/internal/server/storage"
	"github.com/iudanet/studysync/pkg/api"
)

// UserHandler отдает профиль текущего пользователя
type UserHandler struct {
	userStorage storage.UserStorage
	responder
}

// NewUserHandler создает новый handler профиля
func NewUserHandler(logger *slog.Logger, userStorage storage.UserStorage) *UserHandler {
	return &UserHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
	}
}

// Me обрабатывает GET /api/v1/users/me/
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// токен валиден, но пользователь удален вместе с БД
			h.logger.WarnContext(ctx, "token user not found", slog.String("user_id", userID))
			h.sendError(w, "user not found", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.String("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.UserPayload{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		CurrencyCode: user.CurrencyCode,
	}, http.StatusOK)
}
