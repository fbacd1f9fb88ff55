package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/progress"
	"github.com/classpilot/backend/internal/workflow"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	lessons  *workflow.Lesson
	quizzes  *workflow.Quiz
	grading  *workflow.Grading
	feedback *workflow.Feedback
	progress progress.Recorder
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	lessons *workflow.Lesson,
	quizzes *workflow.Quiz,
	grading *workflow.Grading,
	feedback *workflow.Feedback,
	rec progress.Recorder,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		lessons:  lessons,
		quizzes:  quizzes,
		grading:  grading,
		feedback: feedback,
		progress: rec,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError sends a short human-readable error message. Raw error
// payloads never cross this boundary.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false; the caller should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleWorkflowError maps a workflow failure to an HTTP response.
func (h *Handler) handleWorkflowError(w http.ResponseWriter, err error, action string) {
	var parseErr *assistant.ParseError
	switch {
	case errors.Is(err, classroom.ErrNotFound):
		respondError(w, http.StatusNotFound, "submission not found")
	case errors.As(err, &parseErr):
		respondError(w, http.StatusBadGateway, "the assistant returned an unusable answer, please try again")
	default:
		h.logger.Error("workflow error", "action", action, "error", err)
		respondError(w, http.StatusInternalServerError, action+" failed")
	}
}
