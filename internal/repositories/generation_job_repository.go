package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coursegen/backend/internal/models"
)

type generationJobRepository struct {
	db *sql.DB
}

// NewGenerationJobRepository creates a new generation job repository
func NewGenerationJobRepository(db *sql.DB) *generationJobRepository {
	return &generationJobRepository{
		db: db,
	}
}

// Create stores a new job
func (r *generationJobRepository) Create(ctx context.Context, job *models.GenerationJob) error {
	request, err := json.Marshal(job.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal job request: %w", err)
	}

	query := `
		INSERT INTO generation_jobs (id, status, request)
		VALUES (?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, job.ID, job.Status, request); err != nil {
		return fmt.Errorf("failed to create generation job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by its ID
func (r *generationJobRepository) GetByID(ctx context.Context, id string) (*models.GenerationJob, error) {
	query := `
		SELECT id, status, request, course_id, error, created_at, updated_at
		FROM generation_jobs
		WHERE id = ?
		LIMIT 1
	`

	var job models.GenerationJob
	var request []byte
	var courseID sql.NullInt64
	var errMsg sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.Status,
		&request,
		&courseID,
		&errMsg,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("generation job %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation job by id: %w", err)
	}

	if err := json.Unmarshal(request, &job.Request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job request: %w", err)
	}
	job.CourseID = intPtr(courseID)
	job.Error = errMsg.String

	return &job, nil
}

// UpdateStatus moves a job to a new status, recording the produced course or the failure message
func (r *generationJobRepository) UpdateStatus(ctx context.Context, id string, status models.JobStatus, courseID *int, errMsg string) error {
	query := `
		UPDATE generation_jobs
		SET status = ?, course_id = ?, error = ?
		WHERE id = ?
	`

	var msg sql.NullString
	if errMsg != "" {
		msg = sql.NullString{String: errMsg, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, status, nullInt(courseID), msg, id)
	if err != nil {
		return fmt.Errorf("failed to update generation job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("generation job %w", models.ErrNotFound)
	}

	return nil
}

// FailStale marks jobs that have been running since before cutoff as failed and returns their count
func (r *generationJobRepository) FailStale(ctx context.Context, cutoff time.Time, errMsg string) (int64, error) {
	query := `
		UPDATE generation_jobs
		SET status = ?, error = ?
		WHERE status = ? AND updated_at < ?
	`

	result, err := r.db.ExecContext(ctx, query, models.JobStatusFailed, errMsg, models.JobStatusRunning, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale generation jobs: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
