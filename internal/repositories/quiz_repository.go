package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

type quizRepository struct {
	db *sql.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sql.DB) *quizRepository {
	return &quizRepository{
		db: db,
	}
}

// GetByLessonID retrieves the quiz of a lesson
func (r *quizRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.Quiz, error) {
	query := `
		SELECT id, lesson_id, questions, created_at
		FROM quizzes
		WHERE lesson_id = ?
		LIMIT 1
	`

	quiz, err := scanQuiz(r.db.QueryRowContext(ctx, query, lessonID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("quiz %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz by lesson id: %w", err)
	}

	return quiz, nil
}

// GetByLessonIDs retrieves the quizzes of several lessons keyed by lesson ID
func (r *quizRepository) GetByLessonIDs(ctx context.Context, lessonIDs []int) (map[int]*models.Quiz, error) {
	quizzes := make(map[int]*models.Quiz)
	if len(lessonIDs) == 0 {
		return quizzes, nil
	}

	placeholders, args := inClause(lessonIDs)
	query := fmt.Sprintf(`
		SELECT id, lesson_id, questions, created_at
		FROM quizzes
		WHERE lesson_id IN (%s)
	`, placeholders)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quizzes[quiz.LessonID] = quiz
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return quizzes, nil
}

func scanQuiz(row rowScanner) (*models.Quiz, error) {
	var quiz models.Quiz
	var questions []byte
	if err := row.Scan(&quiz.ID, &quiz.LessonID, &questions, &quiz.CreatedAt); err != nil {
		return nil, err
	}

	quiz.Questions = []models.QuizQuestion{}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz questions: %w", err)
		}
	}

	return &quiz, nil
}
