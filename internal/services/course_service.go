package services

import (
	"context"
	"fmt"

	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetAll retrieves all courses newest first.
	//
	// Modules are not loaded; every item carries its module and lesson counts instead.
	GetAll(ctx context.Context) ([]models.CourseListItem, error)
	// GetByID retrieves a course without its modules.
	//
	// Returns an error wrapping models.ErrNotFound if the course does not exist.
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// GetActiveByUser retrieves the courses in which the user completed at least one lesson
	GetActiveByUser(ctx context.Context, userID int) ([]models.CourseShortInfo, error)
	// CreateTree persists a course with its modules, lessons, quizzes and study notes.
	//
	// Everything is written in one transaction; on success every ID in the tree is filled in.
	CreateTree(ctx context.Context, course *models.Course) error
	// Delete removes a course together with everything under it.
	//
	// Returns an error wrapping models.ErrNotFound if the course does not exist.
	Delete(ctx context.Context, id int) error
}

// ModuleRepository defines methods for module data access
type ModuleRepository interface {
	// GetByID retrieves a module without its lessons
	GetByID(ctx context.Context, id int) (*models.Module, error)
	// GetByCourseID retrieves the modules of a course in order
	GetByCourseID(ctx context.Context, courseID int) ([]models.Module, error)
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson without its quiz
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// GetByModuleID retrieves the lessons of a module in order
	GetByModuleID(ctx context.Context, moduleID int) ([]models.Lesson, error)
	// GetByCourseID retrieves all lessons of a course ordered by module and lesson order
	GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error)
	// Count returns the total number of lessons
	Count(ctx context.Context) (int, error)
	// Exists reports whether a lesson exists
	Exists(ctx context.Context, id int) (bool, error)
	// UpdateNotes replaces the AI notes of a lesson
	UpdateNotes(ctx context.Context, id int, notes string) error
}

// QuizRepository defines methods for quiz data access
type QuizRepository interface {
	// GetByLessonID retrieves the quiz of a lesson
	GetByLessonID(ctx context.Context, lessonID int) (*models.Quiz, error)
	// GetByLessonIDs retrieves the quizzes of several lessons keyed by lesson ID.
	//
	// Lessons without a quiz are absent from the map.
	GetByLessonIDs(ctx context.Context, lessonIDs []int) (map[int]*models.Quiz, error)
}

type courseService struct {
	courseRepo CourseRepository
	moduleRepo ModuleRepository
	lessonRepo LessonRepository
	quizRepo   QuizRepository
	logger     *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo CourseRepository,
	moduleRepo ModuleRepository,
	lessonRepo LessonRepository,
	quizRepo QuizRepository,
	logger *zap.Logger,
) *courseService {
	return &courseService{
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		quizRepo:   quizRepo,
		logger:     logger,
	}
}

// GetCourses retrieves all courses newest first
func (s *courseService) GetCourses(ctx context.Context) ([]models.CourseListItem, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	return courses, nil
}

// GetCourse retrieves a course with its modules, their lessons and the lessons' quizzes
func (s *courseService) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	modules, err := s.moduleRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	if err := s.attachQuizzes(ctx, lessons); err != nil {
		return nil, err
	}

	index := make(map[int]int, len(modules))
	for i := range modules {
		index[modules[i].ID] = i
	}
	for _, lesson := range lessons {
		i, ok := index[lesson.ModuleID]
		if !ok {
			continue
		}
		modules[i].Lessons = append(modules[i].Lessons, lesson)
	}

	course.Modules = modules
	return course, nil
}

// DeleteCourse removes a course with all its modules, lessons, quizzes, notes and progress
func (s *courseService) DeleteCourse(ctx context.Context, id int) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("course deleted", zap.Int("course_id", id))
	return nil
}

// GetModule retrieves a module with its lessons and their quizzes
func (s *courseService) GetModule(ctx context.Context, id int) (*models.Module, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}

	lessons, err := s.lessonRepo.GetByModuleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	if err := s.attachQuizzes(ctx, lessons); err != nil {
		return nil, err
	}

	module.Lessons = lessons
	return module, nil
}

// GetLesson retrieves a lesson with its quiz, if it has one
func (s *courseService) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	lessons := []models.Lesson{*lesson}
	if err := s.attachQuizzes(ctx, lessons); err != nil {
		return nil, err
	}

	return &lessons[0], nil
}

// GetQuiz retrieves the quiz of a lesson
func (s *courseService) GetQuiz(ctx context.Context, lessonID int) (*models.Quiz, error) {
	exists, err := s.lessonRepo.Exists(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to check lesson existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("lesson %w", models.ErrNotFound)
	}

	quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return quiz, nil
}

func (s *courseService) attachQuizzes(ctx context.Context, lessons []models.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	ids := make([]int, len(lessons))
	for i := range lessons {
		ids[i] = lessons[i].ID
	}

	quizzes, err := s.quizRepo.GetByLessonIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get quizzes: %w", err)
	}

	for i := range lessons {
		lessons[i].Quiz = quizzes[lessons[i].ID]
	}

	return nil
}
