package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new user progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// Upsert marks a lesson completed for a user.
// A nil score keeps any score stored by an earlier quiz submission.
func (r *progressRepository) Upsert(ctx context.Context, userID, lessonID int, score *int) error {
	query := `
		INSERT INTO user_progress (user_id, lesson_id, completed, quiz_score)
		VALUES (?, ?, TRUE, ?)
		ON DUPLICATE KEY UPDATE
			completed = TRUE,
			quiz_score = COALESCE(VALUES(quiz_score), quiz_score)
	`

	if _, err := r.db.ExecContext(ctx, query, userID, lessonID, nullInt(score)); err != nil {
		return fmt.Errorf("failed to upsert user progress: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's progress rows newest first with lesson, module and course titles
func (r *progressRepository) GetByUserID(ctx context.Context, userID int) ([]models.UserProgress, error) {
	query := `
		SELECT
			up.id,
			up.user_id,
			up.lesson_id,
			l.title,
			m.title,
			c.title,
			up.completed,
			up.quiz_score,
			up.completed_at
		FROM user_progress up
		JOIN lessons l ON l.id = up.lesson_id
		JOIN modules m ON m.id = l.module_id
		JOIN courses c ON c.id = m.course_id
		WHERE up.user_id = ?
		ORDER BY up.completed_at DESC, up.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user progress: %w", err)
	}
	defer rows.Close()

	progress := []models.UserProgress{}
	for rows.Next() {
		var p models.UserProgress
		var score sql.NullInt64
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.LessonID,
			&p.LessonTitle,
			&p.ModuleTitle,
			&p.CourseTitle,
			&p.Completed,
			&score,
			&p.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user progress: %w", err)
		}
		p.QuizScore = intPtr(score)
		progress = append(progress, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return progress, nil
}

// GetStats returns completed lesson count and average quiz score of a user
func (r *progressRepository) GetStats(ctx context.Context, userID int) (*models.ProgressStats, error) {
	query := `
		SELECT
			COUNT(CASE WHEN completed THEN 1 END),
			COALESCE(AVG(quiz_score), 0)
		FROM user_progress
		WHERE user_id = ?
	`

	var stats models.ProgressStats
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&stats.CompletedLessons, &stats.AverageScore); err != nil {
		return nil, fmt.Errorf("failed to get progress stats: %w", err)
	}

	return &stats, nil
}
