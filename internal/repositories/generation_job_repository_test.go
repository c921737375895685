package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursegen/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupJobTestRepository creates a generation job repository with a mock database
func setupJobTestRepository(t *testing.T) (*generationJobRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewGenerationJobRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestGenerationJobRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupJobTestRepository(t)
	defer cleanup()

	job := &models.GenerationJob{
		ID:      "3f1c1f4e-7f5a-4b8e-9a39-1b1c0e5e2d11",
		Status:  models.JobStatusPending,
		Request: models.GenerateCourseRequest{Topic: "Go", Difficulty: models.DifficultyBeginner},
	}
	mock.ExpectExec(`(?s)INSERT INTO generation_jobs`).
		WithArgs(job.ID, models.JobStatusPending, []byte(`{"topic":"Go","difficulty":"beginner"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), job)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationJobRepository_GetByID(t *testing.T) {
	columns := []string{"id", "status", "request", "course_id", "error", "created_at", "updated_at"}
	now := time.Now()

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
	}{
		{
			name: "completed job",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("job-1", "completed", []byte(`{"topic":"Go"}`), 12, nil, now, now)
				mock.ExpectQuery(`(?s)SELECT.*FROM generation_jobs.*WHERE id = \?`).
					WithArgs("job-1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM generation_jobs`).
					WithArgs("job-1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			notFound:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupJobTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			job, err := repo.GetByID(context.Background(), "job-1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.JobStatusCompleted, job.Status)
				assert.Equal(t, "Go", job.Request.Topic)
				require.NotNil(t, job.CourseID)
				assert.Equal(t, 12, *job.CourseID)
				assert.Empty(t, job.Error)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGenerationJobRepository_UpdateStatus(t *testing.T) {
	courseID := 12

	tests := []struct {
		name          string
		status        models.JobStatus
		courseID      *int
		errMsg        string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:     "completed",
			status:   models.JobStatusCompleted,
			courseID: &courseID,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)UPDATE generation_jobs.*SET status = \?, course_id = \?, error = \?`).
					WithArgs(models.JobStatusCompleted, int64(12), nil, "job-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "failed",
			status: models.JobStatusFailed,
			errMsg: "boom",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)UPDATE generation_jobs`).
					WithArgs(models.JobStatusFailed, nil, "boom", "job-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "unknown job",
			status: models.JobStatusRunning,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`(?s)UPDATE generation_jobs`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupJobTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.UpdateStatus(context.Background(), "job-1", tt.status, tt.courseID, tt.errMsg)

			if tt.expectedError {
				assert.ErrorIs(t, err, models.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGenerationJobRepository_FailStale(t *testing.T) {
	repo, mock, cleanup := setupJobTestRepository(t)
	defer cleanup()

	cutoff := time.Now().Add(-30 * time.Minute)
	mock.ExpectExec(`(?s)UPDATE generation_jobs.*WHERE status = \? AND updated_at < \?`).
		WithArgs(models.JobStatusFailed, "timed out", models.JobStatusRunning, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.FailStale(context.Background(), cutoff, "timed out")

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
