package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeGenerateCourse is the asynq task type of an asynchronous course generation
	TypeGenerateCourse = "course:generate"
	// QueueGeneration is the queue generation tasks are sent to
	QueueGeneration = "generation"
	// generationTimeout bounds a single generation run
	generationTimeout = 15 * time.Minute
)

type generatePayload struct {
	JobID string `json:"jobId"`
}

// NewGenerateCourseTask builds the task that generates the course of a stored job
func NewGenerateCourseTask(jobID string) (*asynq.Task, error) {
	payload, err := json.Marshal(generatePayload{JobID: jobID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateCourse, payload), nil
}

// TaskClient is the part of *asynq.Client used to enqueue tasks
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer sends generation jobs to the workers
type Enqueuer struct {
	client TaskClient
}

// NewEnqueuer creates a new enqueuer backed by an asynq client
func NewEnqueuer(client TaskClient) *Enqueuer {
	return &Enqueuer{
		client: client,
	}
}

// EnqueueGenerateCourse enqueues the generation of a stored job.
// Generation is not retried; a failed run leaves the job in the failed state.
func (e *Enqueuer) EnqueueGenerateCourse(ctx context.Context, jobID string) error {
	task, err := NewGenerateCourseTask(jobID)
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueGeneration),
		asynq.MaxRetry(0),
		asynq.Timeout(generationTimeout),
	); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}
