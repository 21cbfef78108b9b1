package storage

import "errors"

// Common client storage errors
var (
	// ErrNotFound indicates that the key is not in the store
	ErrNotFound = errors.New("entry not found")

	// ErrCorrupt indicates that the backing file exists but cannot be decoded
	ErrCorrupt = errors.New("store file is corrupt")
)
