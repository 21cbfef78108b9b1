package storage

//go:generate moq -out storage_mock.go . UserStorage StudyStorage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStudyNotFound indicates that the study does not exist or belongs to another user
	ErrStudyNotFound = errors.New("study not found")
)
