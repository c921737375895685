package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coursegen/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// JobService is the interface that wraps asynchronous course generation
type JobService interface {
	// CreateJob validates the request and queues its generation
	CreateJob(ctx context.Context, req models.GenerateCourseRequest) (*models.JobAcceptedResponse, error)
	// GetJob returns a job by its ID
	GetJob(ctx context.Context, id string) (*models.GenerationJob, error)
}

// JobHandler handles HTTP requests for generation jobs
type JobHandler struct {
	BaseHandler
	service JobService
}

// NewJobHandler creates a new generation job handler
func NewJobHandler(service JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all job handler routes
func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Post("/generate/jobs", h.CreateJob)
	r.Get("/generate/jobs/{id}", h.GetJob)
}

// CreateJob handles POST /api/v1/generate/jobs
// @Summary Queue a course generation
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body models.GenerateCourseRequest true "Generation request"
// @Success 202 {object} models.JobAcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accepted, err := h.service.CreateJob(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to queue generation")
		return
	}

	h.respondJSON(w, http.StatusAccepted, accepted)
}

// GetJob handles GET /api/v1/generate/jobs/{id}
// @Summary Get a generation job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.GenerationJob
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate/jobs/{id} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get generation job")
		return
	}

	h.respondJSON(w, http.StatusOK, job)
}
