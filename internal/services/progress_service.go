package services

import (
	"context"
	"fmt"
	"math"

	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

type progressService struct {
	progressRepo ProgressRepository
	lessonRepo   LessonRepository
	courseRepo   CourseRepository
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(
	progressRepo ProgressRepository,
	lessonRepo LessonRepository,
	courseRepo CourseRepository,
	logger *zap.Logger,
) *progressService {
	return &progressService{
		progressRepo: progressRepo,
		lessonRepo:   lessonRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

// GetUserProgress retrieves the progress rows of a user newest first
func (s *progressService) GetUserProgress(ctx context.Context, userID int) ([]models.UserProgress, error) {
	if userID <= 0 {
		return nil, invalidUserID()
	}

	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}

	return progress, nil
}

// CompleteLesson marks a lesson completed, keeping any quiz score already recorded
func (s *progressService) CompleteLesson(ctx context.Context, lessonID, userID int) error {
	userID, err := resolveUserID(userID)
	if err != nil {
		return err
	}

	exists, err := s.lessonRepo.Exists(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to check lesson existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("lesson %w", models.ErrNotFound)
	}

	if err := s.progressRepo.Upsert(ctx, userID, lessonID, nil); err != nil {
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}

	s.logger.Debug("lesson completed", zap.Int("lesson_id", lessonID), zap.Int("user_id", userID))
	return nil
}

// GetDashboard aggregates completion and quiz statistics of a user
func (s *progressService) GetDashboard(ctx context.Context, userID int) (*models.DashboardResponse, error) {
	if userID <= 0 {
		return nil, invalidUserID()
	}

	stats, err := s.progressRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress stats: %w", err)
	}

	total, err := s.lessonRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}

	active, err := s.courseRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active courses: %w", err)
	}

	percentage := 0
	if total > 0 {
		percentage = int(float64(stats.CompletedLessons) / float64(total) * 100)
	}

	return &models.DashboardResponse{
		CompletedLessons:     stats.CompletedLessons,
		TotalLessons:         total,
		CompletionPercentage: percentage,
		AverageScore:         math.Round(stats.AverageScore*10) / 10,
		ActiveCourses:        active,
	}, nil
}

func invalidUserID() error {
	verr := models.NewValidationError()
	verr.Add("userId", "must be a positive integer")
	return verr
}
