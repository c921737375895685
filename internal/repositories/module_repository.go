package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

type moduleRepository struct {
	db *sql.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *sql.DB) *moduleRepository {
	return &moduleRepository{
		db: db,
	}
}

// GetByID retrieves a module without its lessons
func (r *moduleRepository) GetByID(ctx context.Context, id int) (*models.Module, error) {
	query := `
		SELECT id, course_id, title, sort_order, created_at
		FROM modules
		WHERE id = ?
		LIMIT 1
	`

	var module models.Module
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&module.ID,
		&module.CourseID,
		&module.Title,
		&module.Order,
		&module.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("module %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module by id: %w", err)
	}

	module.Lessons = []models.Lesson{}
	return &module, nil
}

// GetByCourseID retrieves the modules of a course in order
func (r *moduleRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.Module, error) {
	query := `
		SELECT id, course_id, title, sort_order, created_at
		FROM modules
		WHERE course_id = ?
		ORDER BY sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := []models.Module{}
	for rows.Next() {
		var module models.Module
		err := rows.Scan(
			&module.ID,
			&module.CourseID,
			&module.Title,
			&module.Order,
			&module.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		module.Lessons = []models.Lesson{}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}
