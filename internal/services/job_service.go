package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coursegen/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerationJobRepository defines methods for generation job data access
type GenerationJobRepository interface {
	// Create stores a new job
	Create(ctx context.Context, job *models.GenerationJob) error
	// GetByID retrieves a job by its ID
	GetByID(ctx context.Context, id string) (*models.GenerationJob, error)
	// UpdateStatus moves a job to a new status, recording the produced course or the failure message
	UpdateStatus(ctx context.Context, id string, status models.JobStatus, courseID *int, errMsg string) error
	// FailStale marks jobs running since before cutoff as failed and returns their count
	FailStale(ctx context.Context, cutoff time.Time, errMsg string) (int64, error)
}

// JobEnqueuer hands a stored job over to the background workers
type JobEnqueuer interface {
	EnqueueGenerateCourse(ctx context.Context, jobID string) error
}

type jobService struct {
	jobRepo  GenerationJobRepository
	enqueuer JobEnqueuer
	logger   *zap.Logger
}

// NewJobService creates a new generation job service
func NewJobService(jobRepo GenerationJobRepository, enqueuer JobEnqueuer, logger *zap.Logger) *jobService {
	return &jobService{
		jobRepo:  jobRepo,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// CreateJob validates the request, stores a pending job and enqueues it
func (s *jobService) CreateJob(ctx context.Context, req models.GenerateCourseRequest) (*models.JobAcceptedResponse, error) {
	if err := ValidateGenerateRequest(&req); err != nil {
		return nil, err
	}

	job := &models.GenerationJob{
		ID:      uuid.NewString(),
		Status:  models.JobStatusPending,
		Request: req,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.enqueuer.EnqueueGenerateCourse(ctx, job.ID); err != nil {
		s.logger.Error("failed to enqueue generation job", zap.String("job_id", job.ID), zap.Error(err))
		if updateErr := s.jobRepo.UpdateStatus(ctx, job.ID, models.JobStatusFailed, nil, "failed to enqueue job"); updateErr != nil {
			s.logger.Error("failed to mark job as failed", zap.String("job_id", job.ID), zap.Error(updateErr))
		}
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	s.logger.Info("generation job queued", zap.String("job_id", job.ID))

	return &models.JobAcceptedResponse{
		JobID:  job.ID,
		Status: job.Status,
	}, nil
}

// GetJob retrieves a job by its ID
func (s *jobService) GetJob(ctx context.Context, id string) (*models.GenerationJob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("generation job %w", models.ErrNotFound)
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}
