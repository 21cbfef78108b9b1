package storage

import (
	"context"
	"time"
)

// Study is a study stored by the sandbox. Money fields are in minor currency units.
type Study struct {
	CreatedAt               time.Time
	UpdatedAt               time.Time
	OwnerID                 string
	Name                    string
	InternalName            string
	Description             string
	ExternalStudyURL        string
	CompletionCode          string
	CallbackURL             string
	StudyType               string
	Status                  string
	DeviceCompatibility     []string
	ID                      int64
	Reward                  int64
	TotalAvailablePlaces    int
	EstimatedCompletionTime int
	MaximumAllowedTime      int
}

// StudyStorage defines interface for study persistence.
// Studies are scoped by owner: other users' studies are reported as ErrStudyNotFound.
type StudyStorage interface {
	// CreateStudy inserts the study and sets its ID
	CreateStudy(ctx context.Context, study *Study) error

	// GetStudy retrieves a study of the owner
	GetStudy(ctx context.Context, ownerID string, id int64) (*Study, error)

	// UpdateStudyStatus sets the status of a study of the owner
	UpdateStudyStatus(ctx context.Context, ownerID string, id int64, status string, updatedAt time.Time) error
}
