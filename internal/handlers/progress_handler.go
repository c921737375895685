package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coursegen/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps quiz submission
type QuizService interface {
	// SubmitQuiz scores the answers against the lesson quiz and records the learner's progress.
	//
	// Empty answers and invalid user IDs return a *models.ValidationError.
	SubmitQuiz(ctx context.Context, lessonID int, req models.SubmitQuizRequest) (*models.QuizResult, error)
}

// ProgressService is the interface that wraps methods for learner progress
type ProgressService interface {
	// GetUserProgress returns the progress rows of a user, newest first
	GetUserProgress(ctx context.Context, userID int) ([]models.UserProgress, error)
	// CompleteLesson marks a lesson as completed; userID 0 means the default user
	CompleteLesson(ctx context.Context, lessonID, userID int) error
	// GetDashboard returns aggregated statistics of a user
	GetDashboard(ctx context.Context, userID int) (*models.DashboardResponse, error)
}

// CompleteLessonResponse is returned when a lesson is marked as completed
type CompleteLessonResponse struct {
	Status string `json:"status"`
}

// ProgressHandler handles HTTP requests for quizzes submissions and learner progress
type ProgressHandler struct {
	BaseHandler
	quizService     QuizService
	progressService ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(quizService QuizService, progressService ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     BaseHandler{logger: logger},
		quizService:     quizService,
		progressService: progressService,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/lessons/{id}/submit-quiz", h.SubmitQuiz)
	r.Post("/lessons/{id}/complete", h.CompleteLesson)
	r.Get("/users/{id}/progress", h.GetUserProgress)
	r.Get("/users/{id}/dashboard", h.GetDashboard)
}

// SubmitQuiz handles POST /api/v1/lessons/{id}/submit-quiz
// @Summary Submit quiz answers
// @Description Score the answers (one option index per question) and record the score. Answers beyond the question count are ignored.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.SubmitQuizRequest true "Answers"
// @Success 200 {object} models.QuizResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/submit-quiz [post]
func (h *ProgressHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.quizService.SubmitQuiz(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err, "failed to submit quiz")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// CompleteLesson handles POST /api/v1/lessons/{id}/complete
// @Summary Mark a lesson as completed
// @Description The body is optional; without a userId the default user is used.
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.CompleteLessonRequest false "User"
// @Success 200 {object} CompleteLessonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/complete [post]
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req models.CompleteLessonRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.progressService.CompleteLesson(r.Context(), id, req.UserID); err != nil {
		h.respondServiceError(w, err, "failed to complete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, CompleteLessonResponse{Status: "completed"})
}

// GetUserProgress handles GET /api/v1/users/{id}/progress
// @Summary Get learner progress
// @Tags progress
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserProgress
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id}/progress [get]
func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	progress, err := h.progressService.GetUserProgress(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// GetDashboard handles GET /api/v1/users/{id}/dashboard
// @Summary Get learner dashboard
// @Tags progress
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id}/dashboard [get]
func (h *ProgressHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	dashboard, err := h.progressService.GetDashboard(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}
