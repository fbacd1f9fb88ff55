package classroom

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no records.
var ErrNotFound = errors.New("not found")

// Submission is the platform's record of one student's work for one
// coursework item.
type Submission struct {
	ID           string `json:"id"`
	CourseID     string `json:"courseId"`
	CourseworkID string `json:"courseWorkId"`
	StudentID    string `json:"userId"`
	State        string `json:"state"`
}

// CourseWork describes a new coursework entry. A non-empty LinkURL is
// attached as link material.
type CourseWork struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	WorkType    string `json:"workType"`
	LinkURL     string `json:"-"`
}

// Service is the classroom platform API as consumed by the workflows.
type Service interface {
	// GetSubmissions returns the submissions for one student on one
	// coursework item. An empty slice means nothing was found.
	GetSubmissions(ctx context.Context, courseID, courseworkID, studentID string) ([]Submission, error)

	// PatchGrade sets both the assigned and draft grade on a submission,
	// sending an update mask naming exactly those two fields.
	PatchGrade(ctx context.Context, courseID, courseworkID, submissionID string, grade int) error

	// CreateAnnouncement posts an announcement to a course and returns
	// its ID.
	CreateAnnouncement(ctx context.Context, courseID, text string) (string, error)

	// CreateCourseWork creates a coursework entry and returns its ID.
	CreateCourseWork(ctx context.Context, courseID string, cw CourseWork) (string, error)

	// AttachLink adds a link attachment to a submission.
	AttachLink(ctx context.Context, courseID, courseworkID, submissionID, url string) error
}
