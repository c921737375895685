package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

const lessonColumns = `l.id, l.module_id, l.title, l.lesson_type, l.youtube_video_id, l.ai_notes, l.duration, l.sort_order, l.chapter_timestamp, l.created_at`

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `SELECT ` + lessonColumns + `
		FROM lessons l
		WHERE l.id = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return lesson, nil
}

// GetByModuleID retrieves the lessons of a module in order
func (r *lessonRepository) GetByModuleID(ctx context.Context, moduleID int) ([]models.Lesson, error) {
	query := `SELECT ` + lessonColumns + `
		FROM lessons l
		WHERE l.module_id = ?
		ORDER BY l.sort_order, l.id
	`

	return r.query(ctx, query, moduleID)
}

// GetByCourseID retrieves all lessons of a course ordered by module and lesson order
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error) {
	query := `SELECT ` + lessonColumns + `
		FROM lessons l
		JOIN modules m ON m.id = l.module_id
		WHERE m.course_id = ?
		ORDER BY m.sort_order, m.id, l.sort_order, l.id
	`

	return r.query(ctx, query, courseID)
}

// Count returns the total number of lessons
func (r *lessonRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}
	return count, nil
}

// Exists reports whether a lesson with the given ID exists
func (r *lessonRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM lessons WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson existence: %w", err)
	}
	return exists, nil
}

// UpdateNotes replaces the AI notes of a lesson
func (r *lessonRepository) UpdateNotes(ctx context.Context, id int, notes string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE lessons SET ai_notes = ? WHERE id = ?`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson notes: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lesson %w", models.ErrNotFound)
	}

	return nil
}

func (r *lessonRepository) query(ctx context.Context, query string, args ...any) ([]models.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*models.Lesson, error) {
	var lesson models.Lesson
	var videoID, timestamp sql.NullString
	err := row.Scan(
		&lesson.ID,
		&lesson.ModuleID,
		&lesson.Title,
		&lesson.LessonType,
		&videoID,
		&lesson.AINotes,
		&lesson.Duration,
		&lesson.Order,
		&timestamp,
		&lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lesson.YoutubeVideoID = stringPtr(videoID)
	lesson.ChapterTimestamp = stringPtr(timestamp)
	return &lesson, nil
}
