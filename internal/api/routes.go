package api

import (
	"net/http"
	"time"

	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/workflow"
)

// RegisterRoutes wires every teacher-facing action to its workflow.
// Each route maps 1:1 to one UI button.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /courses/{courseID}/lessons", h.createLesson)
	mux.HandleFunc("POST /courses/{courseID}/quizzes", h.createQuiz)
	mux.HandleFunc("POST /courses/{courseID}/grades", h.gradeSubmission)
	mux.HandleFunc("POST /courses/{courseID}/feedback", h.giveFeedback)
	mux.HandleFunc("GET /courses/{courseID}/students/{studentID}/progress", h.listProgress)
}

// ── Lessons ─────────────────────────────────────────────────────────────────

type CreateLessonRequest struct {
	Topic string `json:"topic"`
}

type CreateLessonResponse struct {
	Content        string `json:"content"`
	AnnouncementID string `json:"announcement_id"`
}

// createLesson generates lesson content and posts it as an announcement.
//
//	@Summary  Generate lesson content and announce it
//	@Tags     lessons
//	@Accept   json
//	@Produce  json
//	@Param    courseID path string              true "course ID"
//	@Param    request  body CreateLessonRequest true "lesson topic"
//	@Success  201 {object} CreateLessonResponse
//	@Router   /courses/{courseID}/lessons [post]
func (h *Handler) createLesson(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")

	var req CreateLessonRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	result, err := h.lessons.Run(r.Context(), courseID, req.Topic)
	if err != nil {
		h.handleWorkflowError(w, err, "lesson generation")
		return
	}

	respondJSON(w, http.StatusCreated, CreateLessonResponse{
		Content:        result.Content,
		AnnouncementID: result.AnnouncementID,
	})
}

// ── Quizzes ─────────────────────────────────────────────────────────────────

type CreateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
}

type CreateQuizResponse struct {
	CourseworkID string                   `json:"coursework_id"`
	FormURL      string                   `json:"form_url"`
	Questions    []assistant.QuizQuestion `json:"questions"`
}

// createQuiz generates a quiz, publishes it as a form, and creates a
// coursework entry referencing the form.
//
//	@Summary  Generate a quiz and publish it as coursework
//	@Tags     quizzes
//	@Accept   json
//	@Produce  json
//	@Param    courseID path string            true "course ID"
//	@Param    request  body CreateQuizRequest true "quiz parameters"
//	@Success  201 {object} CreateQuizResponse
//	@Router   /courses/{courseID}/quizzes [post]
func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")

	var req CreateQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if req.NumQuestions < 1 {
		respondError(w, http.StatusBadRequest, "num_questions must be at least 1")
		return
	}

	result, err := h.quizzes.Run(r.Context(), courseID, req.Topic, req.NumQuestions)
	if err != nil {
		h.handleWorkflowError(w, err, "quiz generation")
		return
	}

	respondJSON(w, http.StatusCreated, CreateQuizResponse{
		CourseworkID: result.CourseworkID,
		FormURL:      result.FormURL,
		Questions:    result.Questions,
	})
}

// ── Grades ──────────────────────────────────────────────────────────────────

type GradeRequest struct {
	CourseworkID   string `json:"coursework_id"`
	StudentID      string `json:"student_id"`
	SubmissionText string `json:"submission_text"`
	Rubric         string `json:"rubric"`
}

type GradeResponse struct {
	SubmissionID string `json:"submission_id"`
	Grade        int    `json:"grade"`
}

// gradeSubmission grades a submission and pushes the result to the
// classroom service.
//
//	@Summary  Grade a submission
//	@Tags     grades
//	@Accept   json
//	@Produce  json
//	@Param    courseID path string       true "course ID"
//	@Param    request  body GradeRequest true "submission and rubric"
//	@Success  200 {object} GradeResponse
//	@Router   /courses/{courseID}/grades [post]
func (h *Handler) gradeSubmission(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")

	var req GradeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CourseworkID == "" || req.StudentID == "" {
		respondError(w, http.StatusBadRequest, "coursework_id and student_id are required")
		return
	}
	if req.SubmissionText == "" {
		respondError(w, http.StatusBadRequest, "submission_text is required")
		return
	}

	result, err := h.grading.Run(r.Context(), workflow.GradingRequest{
		CourseID:       courseID,
		CourseworkID:   req.CourseworkID,
		StudentID:      req.StudentID,
		SubmissionText: req.SubmissionText,
		Rubric:         req.Rubric,
	})
	if err != nil {
		h.handleWorkflowError(w, err, "grading")
		return
	}

	respondJSON(w, http.StatusOK, GradeResponse{
		SubmissionID: result.SubmissionID,
		Grade:        result.Grade,
	})
}

// ── Feedback ────────────────────────────────────────────────────────────────

type FeedbackRequest struct {
	CourseworkID   string `json:"coursework_id"`
	StudentID      string `json:"student_id"`
	SubmissionText string `json:"submission_text"`
}

type FeedbackResponse struct {
	SubmissionID string `json:"submission_id"`
	DocumentURL  string `json:"document_url"`
}

// giveFeedback generates feedback, publishes it as a document, and
// attaches the document to the submission.
//
//	@Summary  Generate feedback and attach it to a submission
//	@Tags     feedback
//	@Accept   json
//	@Produce  json
//	@Param    courseID path string          true "course ID"
//	@Param    request  body FeedbackRequest true "submission"
//	@Success  200 {object} FeedbackResponse
//	@Router   /courses/{courseID}/feedback [post]
func (h *Handler) giveFeedback(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")

	var req FeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CourseworkID == "" || req.StudentID == "" {
		respondError(w, http.StatusBadRequest, "coursework_id and student_id are required")
		return
	}
	if req.SubmissionText == "" {
		respondError(w, http.StatusBadRequest, "submission_text is required")
		return
	}

	result, err := h.feedback.Run(r.Context(), workflow.FeedbackRequest{
		CourseID:       courseID,
		CourseworkID:   req.CourseworkID,
		StudentID:      req.StudentID,
		SubmissionText: req.SubmissionText,
	})
	if err != nil {
		h.handleWorkflowError(w, err, "feedback")
		return
	}

	respondJSON(w, http.StatusOK, FeedbackResponse{
		SubmissionID: result.SubmissionID,
		DocumentURL:  result.DocumentURL,
	})
}

// ── Progress ────────────────────────────────────────────────────────────────

type ProgressEntry struct {
	RecordedAt string `json:"recorded_at"`
	Grade      int    `json:"grade"`
}

type ProgressResponse struct {
	CourseID  string          `json:"course_id"`
	StudentID string          `json:"student_id"`
	Records   []ProgressEntry `json:"records"`
}

// listProgress returns a student's recorded grades for a course.
//
//	@Summary  List a student's progress records
//	@Tags     progress
//	@Produce  json
//	@Param    courseID  path string true "course ID"
//	@Param    studentID path string true "student ID"
//	@Success  200 {object} ProgressResponse
//	@Router   /courses/{courseID}/students/{studentID}/progress [get]
func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")
	studentID := r.PathValue("studentID")

	records, err := h.progress.List(r.Context(), courseID, studentID)
	if err != nil {
		h.logger.Error("progress list failed", "course_id", courseID, "student_id", studentID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	entries := make([]ProgressEntry, len(records))
	for i, rec := range records {
		entries[i] = ProgressEntry{
			RecordedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
			Grade:      rec.Grade,
		}
	}

	respondJSON(w, http.StatusOK, ProgressResponse{
		CourseID:  courseID,
		StudentID: studentID,
		Records:   entries,
	})
}
