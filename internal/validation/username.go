package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// UsernamePattern определяет допустимый формат username на платформе и git-хостинге
// Латинские буквы, цифры, '_', '.', '-'; первый символ - буква или цифра
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]*$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 2
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 64
)

// ErrInvalidUsername возвращается, если username не проходит проверку
var ErrInvalidUsername = errors.New("invalid username")

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidUsername)
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidUsername, MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidUsername, MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("%w: only letters, numbers, '_', '.' and '-' are allowed, starting with a letter or number", ErrInvalidUsername)
	}

	return nil
}

// LooksLikeUsername reports whether the login argument is a username rather than a token.
// Tokens are long opaque strings; a value that is a known username always wins.
func LooksLikeUsername(value string) bool {
	return ValidateUsername(value) == nil && len(value) <= 32
}
