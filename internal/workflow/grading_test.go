package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/workflow"
)

func gradingRequest() workflow.GradingRequest {
	return workflow.GradingRequest{
		CourseID:       "c1",
		CourseworkID:   "cw1",
		StudentID:      "s1",
		SubmissionText: "my essay",
		Rubric:         "clarity and accuracy",
	}
}

func TestGradingHappyPath(t *testing.T) {
	cs := &fakeClassroom{submissions: []classroom.Submission{{ID: "sub1"}}}
	rec := &fakeRecorder{}
	wf := workflow.NewGrading(&fakeGenerator{grade: 87}, cs, rec, discardLogger())

	result, err := wf.Run(context.Background(), gradingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Grade != 87 {
		t.Errorf("expected grade 87, got %d", result.Grade)
	}
	if result.SubmissionID != "sub1" {
		t.Errorf("expected submission sub1, got %q", result.SubmissionID)
	}

	if len(cs.patchedGrades) != 1 || cs.patchedGrades[0] != 87 {
		t.Errorf("expected one patched grade of 87, got %v", cs.patchedGrades)
	}
	if cs.patchedSubIDs[0] != "sub1" {
		t.Errorf("expected grade patched on sub1, got %q", cs.patchedSubIDs[0])
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 progress record, got %d", len(rec.records))
	}
	if rec.records[0].Grade != 87 || rec.records[0].CourseID != "c1" || rec.records[0].StudentID != "s1" {
		t.Errorf("unexpected progress record: %+v", rec.records[0])
	}
}

func TestGradingNoSubmissionFound(t *testing.T) {
	cs := &fakeClassroom{} // lookup returns nothing
	rec := &fakeRecorder{}
	wf := workflow.NewGrading(&fakeGenerator{grade: 87}, cs, rec, discardLogger())

	_, err := wf.Run(context.Background(), gradingRequest())
	if !errors.Is(err, classroom.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if len(cs.patchedGrades) != 0 {
		t.Error("expected no grade patch after failed lookup")
	}
	if len(rec.records) != 0 {
		t.Error("expected no progress record after failed lookup")
	}
}

func TestGradingGraderFailureStopsWorkflow(t *testing.T) {
	cs := &fakeClassroom{submissions: []classroom.Submission{{ID: "sub1"}}}
	rec := &fakeRecorder{}
	wf := workflow.NewGrading(&fakeGenerator{err: errors.New("model unreachable")}, cs, rec, discardLogger())

	if _, err := wf.Run(context.Background(), gradingRequest()); err == nil {
		t.Fatal("expected error when grader fails, got nil")
	}
	if len(cs.patchedGrades) != 0 {
		t.Error("expected no grade patch after grader failure")
	}
}

func TestGradingPatchFailureSkipsRecord(t *testing.T) {
	cs := &fakeClassroom{
		submissions: []classroom.Submission{{ID: "sub1"}},
		patchErr:    errors.New("service unavailable"),
	}
	rec := &fakeRecorder{}
	wf := workflow.NewGrading(&fakeGenerator{grade: 87}, cs, rec, discardLogger())

	if _, err := wf.Run(context.Background(), gradingRequest()); err == nil {
		t.Fatal("expected error when patch fails, got nil")
	}
	if len(rec.records) != 0 {
		t.Error("expected no progress record when patch fails")
	}
}

func TestGradingRecordFailureSurfaces(t *testing.T) {
	cs := &fakeClassroom{submissions: []classroom.Submission{{ID: "sub1"}}}
	rec := &fakeRecorder{appendErr: errors.New("disk full")}
	wf := workflow.NewGrading(&fakeGenerator{grade: 87}, cs, rec, discardLogger())

	if _, err := wf.Run(context.Background(), gradingRequest()); err == nil {
		t.Fatal("expected error when progress append fails, got nil")
	}
	// The grade was already submitted; there is no rollback.
	if len(cs.patchedGrades) != 1 {
		t.Errorf("expected the grade patch to stand, got %v", cs.patchedGrades)
	}
}
