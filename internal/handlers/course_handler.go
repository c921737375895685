package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coursegen/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for reading and deleting courses
type CourseService interface {
	// GetCourses returns every course, newest first, with module and lesson counts
	GetCourses(ctx context.Context) ([]models.CourseListItem, error)
	// GetCourse returns a course with its modules, lessons and quizzes.
	//
	// If the course does not exist, an error wrapping models.ErrNotFound is returned.
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	// DeleteCourse removes a course together with everything generated for it
	DeleteCourse(ctx context.Context, id int) error
	// GetModule returns a module with its lessons and quizzes
	GetModule(ctx context.Context, id int) (*models.Module, error)
	// GetLesson returns a lesson with its quiz
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	// GetQuiz returns the quiz of a lesson
	GetQuiz(ctx context.Context, lessonID int) (*models.Quiz, error)
}

// CourseGenerator is the interface that wraps synchronous course generation
type CourseGenerator interface {
	// GenerateCourse builds a course from a YouTube URL, a topic or a prompt and stores it.
	//
	// Invalid requests return a *models.ValidationError.
	GenerateCourse(ctx context.Context, req models.GenerateCourseRequest) (*models.Course, error)
}

// CourseHandler handles HTTP requests for courses, modules and lessons
type CourseHandler struct {
	BaseHandler
	service   CourseService
	generator CourseGenerator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service CourseService, generator CourseGenerator, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
		generator:   generator,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/generate", h.Generate)
	r.Get("/courses", h.GetCourses)
	r.Get("/courses/{id}", h.GetCourse)
	r.Delete("/courses/{id}", h.DeleteCourse)
	r.Get("/modules/{id}", h.GetModule)
	r.Get("/lessons/{id}", h.GetLesson)
	r.Get("/lessons/{id}/quiz", h.GetQuiz)
}

// Generate handles POST /api/v1/generate
// @Summary Generate a course
// @Description Generate a course from a YouTube video or playlist URL, a topic or a free-text prompt. External API failures fall back to generated placeholder content.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.GenerateCourseRequest true "Generation request"
// @Success 201 {object} models.Course
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate [post]
func (h *CourseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.generator.GenerateCourse(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to generate course")
		return
	}

	h.respondJSON(w, http.StatusCreated, course)
}

// GetCourses handles GET /api/v1/courses
// @Summary List courses
// @Description List all courses, newest first
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseListItem
// @Failure 500 {object} ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetCourses(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get courses")
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/{id}
// @Summary Get a course
// @Description Get a course with its modules, lessons and quizzes
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/v1/courses/{id}
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "failed to delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetModule handles GET /api/v1/modules/{id}
// @Summary Get a module
// @Tags modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} models.Module
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /modules/{id} [get]
func (h *CourseHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid module id")
		return
	}

	module, err := h.service.GetModule(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get module")
		return
	}

	h.respondJSON(w, http.StatusOK, module)
}

// GetLesson handles GET /api/v1/lessons/{id}
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// GetQuiz handles GET /api/v1/lessons/{id}/quiz
// @Summary Get the quiz of a lesson
// @Tags quizzes
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/quiz [get]
func (h *CourseHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to get quiz")
		return
	}

	h.respondJSON(w, http.StatusOK, quiz)
}
