package services

import (
	"context"
	"fmt"

	"github.com/coursegen/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository defines methods for user progress data access
type ProgressRepository interface {
	// Upsert marks a lesson completed for a user.
	//
	// A nil score keeps the score stored by an earlier quiz submission.
	Upsert(ctx context.Context, userID, lessonID int, score *int) error
	// GetByUserID retrieves a user's progress rows newest first
	GetByUserID(ctx context.Context, userID int) ([]models.UserProgress, error)
	// GetStats returns the completed lesson count and the average quiz score of a user
	GetStats(ctx context.Context, userID int) (*models.ProgressStats, error)
}

type quizService struct {
	quizRepo     QuizRepository
	progressRepo ProgressRepository
	logger       *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(quizRepo QuizRepository, progressRepo ProgressRepository, logger *zap.Logger) *quizService {
	return &quizService{
		quizRepo:     quizRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// SubmitQuiz scores the answers against the lesson quiz and records the lesson as completed
func (s *quizService) SubmitQuiz(ctx context.Context, lessonID int, req models.SubmitQuizRequest) (*models.QuizResult, error) {
	if len(req.Answers) == 0 {
		verr := models.NewValidationError()
		verr.Add("answers", "answers are required")
		return nil, verr
	}

	userID, err := resolveUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	result := ScoreQuiz(quiz.Questions, req.Answers)

	if err := s.progressRepo.Upsert(ctx, userID, lessonID, &result.Score); err != nil {
		s.logger.Error("failed to save quiz progress",
			zap.Int("lesson_id", lessonID),
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	return &result, nil
}

// ScoreQuiz compares answers with the questions position by position.
// Answers beyond the number of questions are ignored; a quiz without questions scores 0.
func ScoreQuiz(questions []models.QuizQuestion, answers []int) models.QuizResult {
	correct := 0
	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		if answer == questions[i].CorrectAnswer {
			correct++
		}
	}

	score := 0
	if len(questions) > 0 {
		score = int(float64(correct) / float64(len(questions)) * 100)
	}

	return models.QuizResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		Completed:      true,
	}
}

// resolveUserID applies the default user to requests that do not name one
func resolveUserID(userID int) (int, error) {
	if userID == 0 {
		return models.DefaultUserID, nil
	}
	if userID < 0 {
		return 0, invalidUserID()
	}
	return userID, nil
}
