package progress_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/classpilot/backend/internal/progress"
)

func newRecorder(t *testing.T) *progress.SQLiteRecorder {
	t.Helper()
	rec, err := progress.NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestAppendAndList(t *testing.T) {
	rec := newRecorder(t)
	ctx := context.Background()

	grades := []int{70, 85, 92}
	for _, g := range grades {
		err := rec.Append(ctx, progress.Record{
			CourseID:  "c1",
			StudentID: "s1",
			Grade:     g,
		})
		if err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	records, err := rec.List(ctx, "c1", "s1")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, g := range grades {
		if records[i].Grade != g {
			t.Errorf("record %d: expected grade %d, got %d", i, g, records[i].Grade)
		}
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("expected a timestamp on appended records")
	}
}

func TestListScopedToCourseAndStudent(t *testing.T) {
	rec := newRecorder(t)
	ctx := context.Background()

	entries := []progress.Record{
		{CourseID: "c1", StudentID: "s1", Grade: 80},
		{CourseID: "c1", StudentID: "s2", Grade: 60},
		{CourseID: "c2", StudentID: "s1", Grade: 95},
	}
	for _, e := range entries {
		if err := rec.Append(ctx, e); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	records, err := rec.List(ctx, "c1", "s1")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record for c1/s1, got %d", len(records))
	}
	if records[0].Grade != 80 {
		t.Errorf("expected grade 80, got %d", records[0].Grade)
	}
}

func TestListEmpty(t *testing.T) {
	rec := newRecorder(t)

	records, err := rec.List(context.Background(), "c1", "s1")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestAppendKeepsExplicitTimestamp(t *testing.T) {
	rec := newRecorder(t)
	ctx := context.Background()

	stamp := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	if err := rec.Append(ctx, progress.Record{
		CreatedAt: stamp,
		CourseID:  "c1",
		StudentID: "s1",
		Grade:     77,
	}); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	records, err := rec.List(ctx, "c1", "s1")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if !records[0].CreatedAt.Equal(stamp) {
		t.Errorf("expected timestamp %v, got %v", stamp, records[0].CreatedAt)
	}
}
