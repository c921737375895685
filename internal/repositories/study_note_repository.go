package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coursegen/backend/internal/models"
)

type studyNoteRepository struct {
	db *sql.DB
}

// NewStudyNoteRepository creates a new study note repository
func NewStudyNoteRepository(db *sql.DB) *studyNoteRepository {
	return &studyNoteRepository{
		db: db,
	}
}

// GetByLessonID retrieves the study note of a lesson
func (r *studyNoteRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.StudyNote, error) {
	query := `
		SELECT id, lesson_id, golden_notes, summaries, own_notes, created_at, updated_at
		FROM study_notes
		WHERE lesson_id = ?
		LIMIT 1
	`

	var note models.StudyNote
	var goldenNotes, summaries []byte
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(
		&note.ID,
		&note.LessonID,
		&goldenNotes,
		&summaries,
		&note.OwnNotes,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("study note %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study note by lesson id: %w", err)
	}

	note.GoldenNotes = []models.GoldenNote{}
	if len(goldenNotes) > 0 {
		if err := json.Unmarshal(goldenNotes, &note.GoldenNotes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal golden notes: %w", err)
		}
	}
	note.Summaries = []string{}
	if len(summaries) > 0 {
		if err := json.Unmarshal(summaries, &note.Summaries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summaries: %w", err)
		}
	}

	return &note, nil
}

// UpsertGenerated stores regenerated cards and summaries, keeping the learner's own notes
func (r *studyNoteRepository) UpsertGenerated(ctx context.Context, note *models.StudyNote) error {
	goldenNotes, summaries, err := marshalStudyNote(note)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO study_notes (lesson_id, golden_notes, summaries, own_notes)
		VALUES (?, ?, ?, '')
		ON DUPLICATE KEY UPDATE
			golden_notes = VALUES(golden_notes),
			summaries = VALUES(summaries)
	`

	if _, err := r.db.ExecContext(ctx, query, note.LessonID, goldenNotes, summaries); err != nil {
		return fmt.Errorf("failed to upsert study note: %w", err)
	}

	return nil
}

// UpdateOwnNotes stores the learner's own notes, creating an empty study note if none exists
func (r *studyNoteRepository) UpdateOwnNotes(ctx context.Context, lessonID int, ownNotes string) error {
	query := `
		INSERT INTO study_notes (lesson_id, golden_notes, summaries, own_notes)
		VALUES (?, '[]', '[]', ?)
		ON DUPLICATE KEY UPDATE
			own_notes = VALUES(own_notes)
	`

	if _, err := r.db.ExecContext(ctx, query, lessonID, ownNotes); err != nil {
		return fmt.Errorf("failed to update own notes: %w", err)
	}

	return nil
}

func marshalStudyNote(note *models.StudyNote) ([]byte, []byte, error) {
	cards := note.GoldenNotes
	if cards == nil {
		cards = []models.GoldenNote{}
	}
	goldenNotes, err := json.Marshal(cards)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal golden notes: %w", err)
	}

	lines := note.Summaries
	if lines == nil {
		lines = []string{}
	}
	summaries, err := json.Marshal(lines)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal summaries: %w", err)
	}

	return goldenNotes, summaries, nil
}
