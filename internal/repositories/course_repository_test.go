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

// setupCourseTestRepository creates a course repository with a mock database
func setupCourseTestRepository(t *testing.T) (*courseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCourseRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func strPtr(s string) *string { return &s }

func TestNewCourseRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCourseRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCourseRepository_GetAll(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "title", "description", "youtube_source", "source_type", "difficulty", "module_count", "lesson_count", "created_at", "updated_at"}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(2, "Learn Go", "Go course", "https://youtu.be/abc", "video", "beginner", 3, 10, now, now).
					AddRow(1, "Learn Rust", "Rust course", nil, "topic", "advanced", 2, 4, now, now)
				mock.ExpectQuery(`(?s)SELECT.*FROM courses c.*LEFT JOIN modules m.*ORDER BY c.created_at DESC`).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "empty",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM courses c`).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM courses c`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("invalid", "Learn Go", "Go course", nil, "video", "beginner", 3, 10, now, now)
				mock.ExpectQuery(`(?s)SELECT.*FROM courses c`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
				if tt.expectedCount > 0 {
					assert.Equal(t, "https://youtu.be/abc", *result[0].YoutubeSource)
					assert.Equal(t, 10, result[0].LessonCount)
					assert.Nil(t, result[1].YoutubeSource)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetByID(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "title", "description", "youtube_source", "source_type", "difficulty", "created_at", "updated_at"}

	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, "Learn Go", "Go course", "https://youtu.be/abc", "video", "beginner", now, now)
				mock.ExpectQuery(`(?s)SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM courses.*WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Learn Go", result.Title)
				assert.Equal(t, models.SourceTypeVideo, result.SourceType)
				assert.Equal(t, models.DifficultyBeginner, result.Difficulty)
				assert.NotNil(t, result.Modules)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetActiveByUser(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow(1, "Learn Go").
		AddRow(3, "Learn SQL")
	mock.ExpectQuery(`(?s)SELECT DISTINCT c.id, c.title.*JOIN user_progress up.*WHERE up.user_id = \?`).
		WithArgs(7).
		WillReturnRows(rows)

	result, err := repo.GetActiveByUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []models.CourseShortInfo{{ID: 1, Title: "Learn Go"}, {ID: 3, Title: "Learn SQL"}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func sampleCourseTree() *models.Course {
	return &models.Course{
		Title:         "Learn Go",
		Description:   "Go course",
		YoutubeSource: strPtr("https://youtu.be/abc"),
		SourceType:    models.SourceTypeVideo,
		Difficulty:    models.DifficultyBeginner,
		Modules: []models.Module{
			{
				Title: "Module 1: Intro",
				Order: 1,
				Lessons: []models.Lesson{
					{
						Title:            "Intro",
						LessonType:       models.LessonTypeVideo,
						YoutubeVideoID:   strPtr("abc"),
						AINotes:          "notes",
						Duration:         120,
						Order:            1,
						ChapterTimestamp: strPtr("0:00"),
						Quiz: &models.Quiz{Questions: []models.QuizQuestion{
							{Question: "What is Go?", Options: []string{"A", "B"}, CorrectAnswer: 0},
						}},
					},
					{
						Title:      "Module 1: Intro: Complete Study Guide",
						LessonType: models.LessonTypeNotes,
						Order:      2,
						StudyNote:  &models.StudyNote{},
					},
				},
			},
		},
	}
}

func TestCourseRepository_CreateTree(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`(?s)INSERT INTO courses`).
					WithArgs("Learn Go", "Go course", "https://youtu.be/abc", models.SourceTypeVideo, models.DifficultyBeginner).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(`(?s)INSERT INTO modules`).
					WithArgs(10, "Module 1: Intro", 1).
					WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectExec(`(?s)INSERT INTO lessons`).
					WithArgs(20, "Intro", models.LessonTypeVideo, "abc", "notes", 120, 1, "0:00").
					WillReturnResult(sqlmock.NewResult(30, 1))
				mock.ExpectExec(`(?s)INSERT INTO quizzes`).
					WithArgs(30, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(40, 1))
				mock.ExpectExec(`(?s)INSERT INTO lessons`).
					WithArgs(20, "Module 1: Intro: Complete Study Guide", models.LessonTypeNotes, nil, "", 0, 2, nil).
					WillReturnResult(sqlmock.NewResult(31, 1))
				mock.ExpectExec(`(?s)INSERT INTO study_notes`).
					WithArgs(31, []byte("[]"), []byte("[]"), "").
					WillReturnResult(sqlmock.NewResult(50, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			expectedError: true,
			errorContains: "failed to begin transaction",
		},
		{
			name: "lesson insert error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`(?s)INSERT INTO courses`).
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(`(?s)INSERT INTO modules`).
					WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectExec(`(?s)INSERT INTO lessons`).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
			errorContains: "failed to create lesson",
		},
		{
			name: "commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`(?s)INSERT INTO courses`).WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec(`(?s)INSERT INTO modules`).WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectExec(`(?s)INSERT INTO lessons`).WillReturnResult(sqlmock.NewResult(30, 1))
				mock.ExpectExec(`(?s)INSERT INTO quizzes`).WillReturnResult(sqlmock.NewResult(40, 1))
				mock.ExpectExec(`(?s)INSERT INTO lessons`).WillReturnResult(sqlmock.NewResult(31, 1))
				mock.ExpectExec(`(?s)INSERT INTO study_notes`).WillReturnResult(sqlmock.NewResult(50, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: true,
			errorContains: "failed to commit transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)
			course := sampleCourseTree()

			err := repo.CreateTree(context.Background(), course)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 10, course.ID)
				assert.Equal(t, 20, course.Modules[0].ID)
				assert.Equal(t, 10, course.Modules[0].CourseID)
				assert.Equal(t, 30, course.Modules[0].Lessons[0].ID)
				assert.Equal(t, 40, course.Modules[0].Lessons[0].Quiz.ID)
				assert.Equal(t, 30, course.Modules[0].Lessons[0].Quiz.LessonID)
				assert.Equal(t, 50, course.Modules[0].Lessons[1].StudyNote.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM courses WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM courses WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM courses WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
