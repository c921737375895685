package services

import (
	"context"
	"fmt"

	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

// StudyNoteRepository defines methods for study note data access
type StudyNoteRepository interface {
	// GetByLessonID retrieves the study note of a lesson
	GetByLessonID(ctx context.Context, lessonID int) (*models.StudyNote, error)
	// UpsertGenerated stores regenerated cards and summaries, keeping the learner's own notes
	UpsertGenerated(ctx context.Context, note *models.StudyNote) error
	// UpdateOwnNotes stores the learner's own notes, creating an empty study note if none exists
	UpdateOwnNotes(ctx context.Context, lessonID int, ownNotes string) error
}

type studyNoteService struct {
	noteRepo   StudyNoteRepository
	lessonRepo LessonRepository
	moduleRepo ModuleRepository
	courseRepo CourseRepository
	content    *contentGenerator
	logger     *zap.Logger
}

// NewStudyNoteService creates a new study note service
func NewStudyNoteService(
	noteRepo StudyNoteRepository,
	lessonRepo LessonRepository,
	moduleRepo ModuleRepository,
	courseRepo CourseRepository,
	completer Completer,
	logger *zap.Logger,
) *studyNoteService {
	return &studyNoteService{
		noteRepo:   noteRepo,
		lessonRepo: lessonRepo,
		moduleRepo: moduleRepo,
		courseRepo: courseRepo,
		content:    newContentGenerator(completer, logger),
		logger:     logger,
	}
}

// GetStudyNote retrieves the study note of a lesson, regenerating it first when asked to
func (s *studyNoteService) GetStudyNote(ctx context.Context, lessonID int, regenerate bool) (*models.StudyNote, error) {
	if regenerate {
		return s.RegenerateStudyNote(ctx, lessonID)
	}

	note, err := s.noteRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get study note: %w", err)
	}

	return note, nil
}

// RegenerateStudyNote asks the language model for new cards and summaries.
//
// A notes lesson gets a study guide over the other lessons of its module; any other
// lesson gets a study note about itself. The learner's own notes are kept.
func (s *studyNoteService) RegenerateStudyNote(ctx context.Context, lessonID int) (*models.StudyNote, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	module, err := s.moduleRepo.GetByID(ctx, lesson.ModuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}

	course, err := s.courseRepo.GetByID(ctx, module.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	subject := lesson.Title
	titles := []string{lesson.Title}
	if lesson.LessonType == models.LessonTypeNotes {
		siblings, err := s.lessonRepo.GetByModuleID(ctx, module.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get lessons: %w", err)
		}
		subject = module.Title
		titles = titles[:0]
		for _, sibling := range siblings {
			if sibling.LessonType == models.LessonTypeVideo {
				titles = append(titles, sibling.Title)
			}
		}
	}

	note := s.content.studyNote(ctx, subject, titles, course.Difficulty)
	note.LessonID = lessonID

	if err := s.noteRepo.UpsertGenerated(ctx, &note); err != nil {
		s.logger.Error("failed to save regenerated study note", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to save study note: %w", err)
	}

	saved, err := s.noteRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get study note: %w", err)
	}

	return saved, nil
}

// UpdateOwnNotes stores the learner's own notes for a lesson
func (s *studyNoteService) UpdateOwnNotes(ctx context.Context, lessonID int, ownNotes string) (*models.StudyNote, error) {
	exists, err := s.lessonRepo.Exists(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check lesson existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lesson %w", models.ErrNotFound)
	}

	if err := s.noteRepo.UpdateOwnNotes(ctx, lessonID, ownNotes); err != nil {
		return nil, fmt.Errorf("failed to update own notes: %w", err)
	}

	note, err := s.noteRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get study note: %w", err)
	}

	return note, nil
}

// RegenerateLessonNotes replaces the AI notes of a lesson with a fresh completion
func (s *studyNoteService) RegenerateLessonNotes(ctx context.Context, lessonID int) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	notes := s.content.lessonNotes(ctx, lesson.Title, lesson.AINotes)
	if err := s.lessonRepo.UpdateNotes(ctx, lessonID, notes); err != nil {
		return nil, fmt.Errorf("failed to update lesson notes: %w", err)
	}

	lesson.AINotes = notes
	return lesson, nil
}
