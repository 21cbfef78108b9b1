package jsonfile

import (
	"github.com/iudanet/studysync/internal/client/storage"
	"github.com/iudanet/studysync/internal/models"
)

// NewUserStore opens the known-users store at path.
func NewUserStore(path string) storage.UserStore {
	return New[models.Credential](path)
}

// NewProjectStore opens the known-projects store at path.
func NewProjectStore(path string) storage.ProjectStore {
	return New[models.Project](path)
}
