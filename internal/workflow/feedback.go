package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/publisher"
)

// FeedbackGenerator writes feedback on a student submission.
type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, submission string) (string, error)
}

// Feedback generates written feedback, publishes it as a document, and
// attaches the document to the student's submission.
type Feedback struct {
	generator FeedbackGenerator
	classroom classroom.Service
	docs      publisher.DocumentService
	logger    *slog.Logger
}

// NewFeedback creates the feedback workflow.
func NewFeedback(g FeedbackGenerator, cs classroom.Service, docs publisher.DocumentService, logger *slog.Logger) *Feedback {
	return &Feedback{
		generator: g,
		classroom: cs,
		docs:      docs,
		logger:    logger,
	}
}

type FeedbackRequest struct {
	CourseID       string
	CourseworkID   string
	StudentID      string
	SubmissionText string
}

type FeedbackResult struct {
	SubmissionID string
	DocumentURL  string
}

// Run executes generate → lookup → publish → attach. If attaching fails
// the published document is left in place; there is no cleanup step.
func (wf *Feedback) Run(ctx context.Context, req FeedbackRequest) (*FeedbackResult, error) {
	feedback, err := wf.generator.GenerateFeedback(ctx, req.SubmissionText)
	if err != nil {
		wf.logger.Error("feedback generation failed", "course_id", req.CourseID, "student_id", req.StudentID, "error", err)
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	subs, err := wf.classroom.GetSubmissions(ctx, req.CourseID, req.CourseworkID, req.StudentID)
	if err != nil {
		wf.logger.Error("submission lookup failed", "course_id", req.CourseID, "student_id", req.StudentID, "error", err)
		return nil, fmt.Errorf("lookup submission: %w", err)
	}
	if len(subs) == 0 {
		wf.logger.Info("no submission found",
			"course_id", req.CourseID, "coursework_id", req.CourseworkID, "student_id", req.StudentID)
		return nil, fmt.Errorf("lookup submission: %w", classroom.ErrNotFound)
	}
	submission := subs[0]

	docURL, err := wf.publish(ctx, req.StudentID, feedback)
	if err != nil {
		wf.logger.Error("feedback publish failed", "submission_id", submission.ID, "error", err)
		return nil, fmt.Errorf("publish feedback: %w", err)
	}

	if err := wf.classroom.AttachLink(ctx, req.CourseID, req.CourseworkID, submission.ID, docURL); err != nil {
		wf.logger.Error("feedback attach failed", "submission_id", submission.ID, "doc_url", docURL, "error", err)
		return nil, fmt.Errorf("attach feedback: %w", err)
	}

	wf.logger.Info("feedback attached",
		"course_id", req.CourseID, "student_id", req.StudentID, "doc_url", docURL)

	return &FeedbackResult{SubmissionID: submission.ID, DocumentURL: docURL}, nil
}

// publish creates the document, writes the feedback as its entire body,
// and returns its shareable location.
func (wf *Feedback) publish(ctx context.Context, studentID, feedback string) (string, error) {
	docID, err := wf.docs.CreateDocument(ctx, fmt.Sprintf("Feedback for %s", studentID))
	if err != nil {
		return "", err
	}
	if err := wf.docs.SetBody(ctx, docID, feedback); err != nil {
		return "", err
	}
	return wf.docs.ShareableURL(ctx, docID)
}
