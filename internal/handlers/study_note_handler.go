package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coursegen/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StudyNoteService is the interface that wraps methods for study notes and lesson notes
type StudyNoteService interface {
	// GetStudyNote returns the study note of a lesson, regenerating it first when regenerate is true
	GetStudyNote(ctx context.Context, lessonID int, regenerate bool) (*models.StudyNote, error)
	// UpdateOwnNotes stores the learner's own notes of a lesson
	UpdateOwnNotes(ctx context.Context, lessonID int, ownNotes string) (*models.StudyNote, error)
	// RegenerateLessonNotes replaces the AI notes of a lesson
	RegenerateLessonNotes(ctx context.Context, lessonID int) (*models.Lesson, error)
}

// StudyNoteHandler handles HTTP requests for study notes
type StudyNoteHandler struct {
	BaseHandler
	service StudyNoteService
}

// NewStudyNoteHandler creates a new study note handler
func NewStudyNoteHandler(service StudyNoteService, logger *zap.Logger) *StudyNoteHandler {
	return &StudyNoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all study note handler routes
func (h *StudyNoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/lessons/{id}/study-notes", h.GetStudyNote)
	r.Put("/lessons/{id}/study-notes", h.UpdateOwnNotes)
	r.Post("/lessons/{id}/regenerate-notes", h.RegenerateLessonNotes)
}

// GetStudyNote handles GET /api/v1/lessons/{id}/study-notes
// @Summary Get the study note of a lesson
// @Tags study-notes
// @Produce json
// @Param id path int true "Lesson ID"
// @Param regenerate query bool false "Regenerate cards and summaries before returning them"
// @Success 200 {object} models.StudyNote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/study-notes [get]
func (h *StudyNoteHandler) GetStudyNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	regenerate := false
	if v := r.URL.Query().Get("regenerate"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid regenerate parameter")
			return
		}
		regenerate = parsed
	}

	note, err := h.service.GetStudyNote(r.Context(), id, regenerate)
	if err != nil {
		h.respondServiceError(w, err, "failed to get study note")
		return
	}

	h.respondJSON(w, http.StatusOK, note)
}

// UpdateOwnNotes handles PUT /api/v1/lessons/{id}/study-notes
// @Summary Update the learner's own notes
// @Tags study-notes
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateOwnNotesRequest true "Own notes"
// @Success 200 {object} models.StudyNote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/study-notes [put]
func (h *StudyNoteHandler) UpdateOwnNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var req models.UpdateOwnNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.service.UpdateOwnNotes(r.Context(), id, req.OwnNotes)
	if err != nil {
		h.respondServiceError(w, err, "failed to update study note")
		return
	}

	h.respondJSON(w, http.StatusOK, note)
}

// RegenerateLessonNotes handles POST /api/v1/lessons/{id}/regenerate-notes
// @Summary Regenerate the AI notes of a lesson
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lessons/{id}/regenerate-notes [post]
func (h *StudyNoteHandler) RegenerateLessonNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	lesson, err := h.service.RegenerateLessonNotes(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "failed to regenerate notes")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}
