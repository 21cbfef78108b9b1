package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/studysync/internal/server/storage"
)

// CreateStudy inserts the study and sets its ID
func (s *Storage) CreateStudy(ctx context.Context, study *storage.Study) error {
	devices, err := json.Marshal(study.DeviceCompatibility)
	if err != nil {
		return fmt.Errorf("failed to encode device compatibility: %w", err)
	}
	if study.DeviceCompatibility == nil {
		devices = []byte("[]")
	}

	query := `
		INSERT INTO studies (
			owner_id, name, internal_name, description, external_study_url,
			completion_code, callback_url, study_type, status, device_compatibility,
			reward, total_available_places, estimated_completion_time, maximum_allowed_time,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		study.OwnerID,
		study.Name,
		study.InternalName,
		study.Description,
		study.ExternalStudyURL,
		study.CompletionCode,
		study.CallbackURL,
		study.StudyType,
		study.Status,
		string(devices),
		study.Reward,
		study.TotalAvailablePlaces,
		study.EstimatedCompletionTime,
		study.MaximumAllowedTime,
		study.CreatedAt,
		study.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert study: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get study id: %w", err)
	}
	study.ID = id

	return nil
}

// GetStudy retrieves a study of the owner
func (s *Storage) GetStudy(ctx context.Context, ownerID string, id int64) (*storage.Study, error) {
	query := `
		SELECT id, owner_id, name, internal_name, description, external_study_url,
			completion_code, callback_url, study_type, status, device_compatibility,
			reward, total_available_places, estimated_completion_time, maximum_allowed_time,
			created_at, updated_at
		FROM studies
		WHERE id = ? AND owner_id = ?
	`

	study := &storage.Study{}
	var devices string
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&study.ID,
		&study.OwnerID,
		&study.Name,
		&study.InternalName,
		&study.Description,
		&study.ExternalStudyURL,
		&study.CompletionCode,
		&study.CallbackURL,
		&study.StudyType,
		&study.Status,
		&devices,
		&study.Reward,
		&study.TotalAvailablePlaces,
		&study.EstimatedCompletionTime,
		&study.MaximumAllowedTime,
		&study.CreatedAt,
		&study.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStudyNotFound
		}
		return nil, fmt.Errorf("failed to get study: %w", err)
	}

	if err := json.Unmarshal([]byte(devices), &study.DeviceCompatibility); err != nil {
		return nil, fmt.Errorf("failed to decode device compatibility: %w", err)
	}

	return study, nil
}

// UpdateStudyStatus sets the status of a study of the owner
func (s *Storage) UpdateStudyStatus(ctx context.Context, ownerID string, id int64, status string, updatedAt time.Time) error {
	query := `UPDATE studies SET status = ?, updated_at = ? WHERE id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, status, updatedAt, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update study status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrStudyNotFound
	}

	return nil
}
