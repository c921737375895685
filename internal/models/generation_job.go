package models

import "time"

// JobStatus represents the lifecycle state of an asynchronous generation
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// GenerationJob tracks an asynchronous course generation
type GenerationJob struct {
	ID        string                `json:"id"`
	Status    JobStatus             `json:"status"`
	Request   GenerateCourseRequest `json:"request"`
	CourseID  *int                  `json:"courseId"`
	Error     string                `json:"error,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// JobAcceptedResponse is returned when a generation job is queued
type JobAcceptedResponse struct {
	JobID  string    `json:"jobId"`
	Status JobStatus `json:"status"`
}
