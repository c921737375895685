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

func TestQuizRepository_GetByLessonID(t *testing.T) {
	columns := []string{"id", "lesson_id", "questions", "created_at"}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, 5, []byte(`[{"question":"What is Go?","options":["A","B","C","D"],"correct_answer":2}]`), time.Now())
				mock.ExpectQuery(`(?s)SELECT.*FROM quizzes.*WHERE lesson_id = \?`).
					WithArgs(5).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`(?s)SELECT.*FROM quizzes`).
					WithArgs(5).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name: "invalid json",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow(1, 5, []byte(`{broken`), time.Now())
				mock.ExpectQuery(`(?s)SELECT.*FROM quizzes`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			repo := NewQuizRepository(db)

			tt.setupMock(mock)

			quiz, err := repo.GetByLessonID(context.Background(), 5)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, models.ErrNotFound))
				assert.Nil(t, quiz)
			} else {
				require.NoError(t, err)
				require.Len(t, quiz.Questions, 1)
				assert.Equal(t, 2, quiz.Questions[0].CorrectAnswer)
				assert.Equal(t, []string{"A", "B", "C", "D"}, quiz.Questions[0].Options)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuizRepository_GetByLessonIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQuizRepository(db)

	empty, err := repo.GetByLessonIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	rows := sqlmock.NewRows([]string{"id", "lesson_id", "questions", "created_at"}).
		AddRow(1, 5, []byte(`[]`), time.Now()).
		AddRow(2, 7, []byte(`[{"question":"Q","options":["A"],"correct_answer":0}]`), time.Now())
	mock.ExpectQuery(`(?s)SELECT.*FROM quizzes.*WHERE lesson_id IN \(\?, \?, \?\)`).
		WithArgs(5, 6, 7).
		WillReturnRows(rows)

	quizzes, err := repo.GetByLessonIDs(context.Background(), []int{5, 6, 7})

	require.NoError(t, err)
	assert.Len(t, quizzes, 2)
	assert.Empty(t, quizzes[5].Questions)
	assert.Len(t, quizzes[7].Questions, 1)
	assert.Nil(t, quizzes[6])
	assert.NoError(t, mock.ExpectationsWereMet())
}
