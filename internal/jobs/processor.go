package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coursegen/backend/internal/models"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// StaleAfter is how long a job may stay running before housekeeping fails it
	StaleAfter = 30 * time.Minute
	// StaleCheckSpec is the cron schedule of the stale job check
	StaleCheckSpec = "@every 10m"

	staleJobMessage = "generation timed out"
)

// JobRepository defines the generation job data access used by the workers
type JobRepository interface {
	// GetByID retrieves a job by its ID
	GetByID(ctx context.Context, id string) (*models.GenerationJob, error)
	// UpdateStatus moves a job to a new status
	UpdateStatus(ctx context.Context, id string, status models.JobStatus, courseID *int, errMsg string) error
	// FailStale marks jobs running since before cutoff as failed
	FailStale(ctx context.Context, cutoff time.Time, errMsg string) (int64, error)
}

// CourseGenerator builds and persists a course
type CourseGenerator interface {
	GenerateCourse(ctx context.Context, req models.GenerateCourseRequest) (*models.Course, error)
}

// Processor runs generation jobs taken from the queue
type Processor struct {
	jobRepo   JobRepository
	generator CourseGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// NewProcessor creates a new job processor
func NewProcessor(jobRepo JobRepository, generator CourseGenerator, logger *zap.Logger) *Processor {
	return &Processor{
		jobRepo:   jobRepo,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// Register adds the processor task handlers to mux
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeGenerateCourse, p.HandleGenerateCourse)
}

// HandleGenerateCourse generates the course of the job named in the task payload
func (p *Processor) HandleGenerateCourse(ctx context.Context, t *asynq.Task) error {
	var payload generatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to parse payload: %v: %w", err, asynq.SkipRetry)
	}

	job, err := p.jobRepo.GetByID(ctx, payload.JobID)
	if err != nil {
		// the job row is gone, nothing to do
		if errors.Is(err, models.ErrNotFound) {
			p.logger.Warn("generation job not found", zap.String("job_id", payload.JobID))
			return nil
		}
		return err
	}

	if job.Status == models.JobStatusCompleted || job.Status == models.JobStatusFailed {
		return nil
	}

	if err := p.jobRepo.UpdateStatus(ctx, job.ID, models.JobStatusRunning, nil, ""); err != nil {
		return err
	}

	course, err := p.generator.GenerateCourse(ctx, job.Request)
	if err != nil {
		p.logger.Error("generation job failed", zap.String("job_id", job.ID), zap.Error(err))
		if updateErr := p.jobRepo.UpdateStatus(ctx, job.ID, models.JobStatusFailed, nil, err.Error()); updateErr != nil {
			p.logger.Error("failed to mark job as failed", zap.String("job_id", job.ID), zap.Error(updateErr))
		}
		return err
	}

	if err := p.jobRepo.UpdateStatus(ctx, job.ID, models.JobStatusCompleted, &course.ID, ""); err != nil {
		return err
	}

	p.logger.Info("generation job completed", zap.String("job_id", job.ID), zap.Int("course_id", course.ID))
	return nil
}

// FailStaleJobs fails jobs that have been running for longer than StaleAfter
func (p *Processor) FailStaleJobs(ctx context.Context) {
	count, err := p.jobRepo.FailStale(ctx, p.now().Add(-StaleAfter), staleJobMessage)
	if err != nil {
		p.logger.Error("failed to fail stale jobs", zap.Error(err))
		return
	}
	if count > 0 {
		p.logger.Warn("stale generation jobs failed", zap.Int64("count", count))
	}
}

// NewScheduler returns a cron scheduler running the stale job check.
// The caller starts and stops it.
func NewScheduler(p *Processor) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(StaleCheckSpec, func() {
		p.FailStaleJobs(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule stale job check: %w", err)
	}
	return c, nil
}
