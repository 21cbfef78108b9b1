package api

// UserPayload представляет ответ GET /users/me/
// Token не приходит с сервера: клиент добавляет исходный токен, чтобы его можно было сохранить вместе с профилем
type UserPayload struct {
	ID           string `json:"id"`                      // идентификатор пользователя на платформе
	Username     string `json:"username"`                // username (ключ в локальном хранилище)
	Name         string `json:"name,omitempty"`          // отображаемое имя
	Email        string `json:"email,omitempty"`         // email
	CurrencyCode string `json:"currency_code,omitempty"` // ISO код валюты аккаунта (GBP, USD)
	Avatar       string `json:"avatar,omitempty"`        // путь к аватару
	Token        string `json:"token,omitempty"`         // bearer token, которым был получен профиль
}

// TokenRequest представляет запрос sandbox-сервера на выпуск токена
type TokenRequest struct {
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
