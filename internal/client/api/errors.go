package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable оборачивает транспортные ошибки: DNS, отказ соединения, таймаут
var ErrUnreachable = errors.New("service unreachable")

// Error is returned when the service answered with an unexpected status code.
type Error struct {
	Body       string
	Message    string // поле message/error из JSON-ответа, если оно было
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
