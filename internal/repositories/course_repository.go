package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAll retrieves all courses newest first with their module and lesson counts
func (r *courseRepository) GetAll(ctx context.Context) ([]models.CourseListItem, error) {
	query := `
		SELECT
			c.id,
			c.title,
			c.description,
			c.youtube_source,
			c.source_type,
			c.difficulty,
			COUNT(DISTINCT m.id) AS module_count,
			COUNT(DISTINCT l.id) AS lesson_count,
			c.created_at,
			c.updated_at
		FROM courses c
		LEFT JOIN modules m ON m.course_id = c.id
		LEFT JOIN lessons l ON l.module_id = m.id
		GROUP BY c.id, c.title, c.description, c.youtube_source, c.source_type, c.difficulty, c.created_at, c.updated_at
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseListItem{}
	for rows.Next() {
		var course models.CourseListItem
		var source sql.NullString
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&source,
			&course.SourceType,
			&course.Difficulty,
			&course.ModuleCount,
			&course.LessonCount,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.YoutubeSource = stringPtr(source)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course without its modules
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, title, description, youtube_source, source_type, difficulty, created_at, updated_at
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	var source sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&source,
		&course.SourceType,
		&course.Difficulty,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	course.YoutubeSource = stringPtr(source)
	course.Modules = []models.Module{}
	return &course, nil
}

// GetActiveByUser retrieves courses in which the user completed at least one lesson
func (r *courseRepository) GetActiveByUser(ctx context.Context, userID int) ([]models.CourseShortInfo, error) {
	query := `
		SELECT DISTINCT c.id, c.title
		FROM courses c
		JOIN modules m ON m.course_id = c.id
		JOIN lessons l ON l.module_id = m.id
		JOIN user_progress up ON up.lesson_id = l.id
		WHERE up.user_id = ? AND up.completed = TRUE
		ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseShortInfo{}
	for rows.Next() {
		var course models.CourseShortInfo
		if err := rows.Scan(&course.ID, &course.Title); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// CreateTree persists a course with all of its modules, lessons, quizzes and study notes
// in one transaction and fills in the generated IDs
func (r *courseRepository) CreateTree(ctx context.Context, course *models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO courses (title, description, youtube_source, source_type, difficulty)
		VALUES (?, ?, ?, ?, ?)
	`,
		course.Title,
		course.Description,
		nullString(course.YoutubeSource),
		course.SourceType,
		course.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	if course.ID, err = lastInsertID(result); err != nil {
		return err
	}

	for i := range course.Modules {
		module := &course.Modules[i]
		module.CourseID = course.ID

		result, err := tx.ExecContext(ctx, `
			INSERT INTO modules (course_id, title, sort_order)
			VALUES (?, ?, ?)
		`, module.CourseID, module.Title, module.Order)
		if err != nil {
			return fmt.Errorf("failed to create module: %w", err)
		}
		if module.ID, err = lastInsertID(result); err != nil {
			return err
		}

		for j := range module.Lessons {
			if err := createLesson(ctx, tx, module.ID, &module.Lessons[j]); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete deletes a course; modules, lessons, quizzes and notes cascade
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("course %w", models.ErrNotFound)
	}

	return nil
}

func createLesson(ctx context.Context, tx *sql.Tx, moduleID int, lesson *models.Lesson) error {
	lesson.ModuleID = moduleID

	result, err := tx.ExecContext(ctx, `
		INSERT INTO lessons (module_id, title, lesson_type, youtube_video_id, ai_notes, duration, sort_order, chapter_timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		lesson.ModuleID,
		lesson.Title,
		lesson.LessonType,
		nullString(lesson.YoutubeVideoID),
		lesson.AINotes,
		lesson.Duration,
		lesson.Order,
		nullString(lesson.ChapterTimestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	if lesson.ID, err = lastInsertID(result); err != nil {
		return err
	}

	if lesson.Quiz != nil && len(lesson.Quiz.Questions) > 0 {
		questions, err := json.Marshal(lesson.Quiz.Questions)
		if err != nil {
			return fmt.Errorf("failed to marshal quiz questions: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO quizzes (lesson_id, questions)
			VALUES (?, ?)
		`, lesson.ID, questions)
		if err != nil {
			return fmt.Errorf("failed to create quiz: %w", err)
		}
		lesson.Quiz.LessonID = lesson.ID
		if lesson.Quiz.ID, err = lastInsertID(result); err != nil {
			return err
		}
	}

	if lesson.StudyNote != nil {
		goldenNotes, summaries, err := marshalStudyNote(lesson.StudyNote)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO study_notes (lesson_id, golden_notes, summaries, own_notes)
			VALUES (?, ?, ?, ?)
		`, lesson.ID, goldenNotes, summaries, lesson.StudyNote.OwnNotes)
		if err != nil {
			return fmt.Errorf("failed to create study note: %w", err)
		}
		lesson.StudyNote.LessonID = lesson.ID
		if lesson.StudyNote.ID, err = lastInsertID(result); err != nil {
			return err
		}
	}

	return nil
}

func lastInsertID(result sql.Result) (int, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return int(id), nil
}
