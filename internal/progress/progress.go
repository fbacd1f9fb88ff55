package progress

import (
	"context"
	"time"
)

// Record is one row of the append-only progress log, written once per
// successful grade submission and never mutated afterward.
type Record struct {
	ID        int64
	CreatedAt time.Time
	CourseID  string
	StudentID string
	Grade     int
}

// Recorder is the progress log as consumed by the workflows.
type Recorder interface {
	// Append adds one record to the log.
	Append(ctx context.Context, rec Record) error

	// List returns a student's records for a course, oldest first.
	List(ctx context.Context, courseID, studentID string) ([]Record, error)
}
