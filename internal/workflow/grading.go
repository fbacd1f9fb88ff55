// Package workflow contains the end-to-end orchestrations behind each
// teacher-facing action. Every workflow is a linear sequence of external
// calls; a failure aborts at the failed step and already-completed steps
// are not rolled back.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/progress"
)

// Grader scores a submission against a rubric.
type Grader interface {
	Grade(ctx context.Context, submission, rubric string) (int, error)
}

// Grading grades a submission, pushes the grade to the classroom service,
// and appends a progress record.
type Grading struct {
	grader    Grader
	classroom classroom.Service
	progress  progress.Recorder
	logger    *slog.Logger
}

// NewGrading creates the grading workflow.
func NewGrading(g Grader, cs classroom.Service, rec progress.Recorder, logger *slog.Logger) *Grading {
	return &Grading{
		grader:    g,
		classroom: cs,
		progress:  rec,
		logger:    logger,
	}
}

type GradingRequest struct {
	CourseID       string
	CourseworkID   string
	StudentID      string
	SubmissionText string
	Rubric         string
}

type GradingResult struct {
	SubmissionID string
	Grade        int
}

// Run executes grade → lookup → patch → record. The progress record is
// written only after the grade has been accepted by the classroom service.
func (wf *Grading) Run(ctx context.Context, req GradingRequest) (*GradingResult, error) {
	grade, err := wf.grader.Grade(ctx, req.SubmissionText, req.Rubric)
	if err != nil {
		wf.logger.Error("grading step failed", "course_id", req.CourseID, "student_id", req.StudentID, "error", err)
		return nil, fmt.Errorf("grade: %w", err)
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

	if err := wf.classroom.PatchGrade(ctx, req.CourseID, req.CourseworkID, submission.ID, grade); err != nil {
		wf.logger.Error("grade submission failed", "submission_id", submission.ID, "error", err)
		return nil, fmt.Errorf("submit grade: %w", err)
	}

	if err := wf.progress.Append(ctx, progress.Record{
		CourseID:  req.CourseID,
		StudentID: req.StudentID,
		Grade:     grade,
	}); err != nil {
		// The grade is already on the classroom service; surface the
		// failure without undoing it.
		wf.logger.Error("progress record failed", "course_id", req.CourseID, "student_id", req.StudentID, "error", err)
		return nil, fmt.Errorf("record progress: %w", err)
	}

	wf.logger.Info("grade submitted",
		"course_id", req.CourseID, "student_id", req.StudentID, "grade", grade)

	return &GradingResult{SubmissionID: submission.ID, Grade: grade}, nil
}
