package storage

import "github.com/iudanet/studysync/internal/models"

//go:generate moq -out store_mock.go . Store

// Store is a persistent string-keyed map. Changes are kept in memory until Save,
// which replaces the whole backing document.
type Store[V any] interface {
	// Get returns the value for key or ErrNotFound
	Get(key string) (V, error)

	// Set stores value under key (in memory)
	Set(key string, value V) error

	// Contains reports whether key is present
	Contains(key string) (bool, error)

	// Delete removes key; deleting a missing key is not an error
	Delete(key string) error

	// Keys returns all keys in sorted order
	Keys() ([]string, error)

	// Save persists the whole map
	Save() error
}

// UserStore holds known platform credentials keyed by username.
type UserStore = Store[models.Credential]

// ProjectStore holds known projects keyed by local id ("namespace/name").
type ProjectStore = Store[models.Project]
