package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classpilot/backend/internal/classroom"
)

// LessonGenerator writes lesson material for a topic.
type LessonGenerator interface {
	GenerateLesson(ctx context.Context, topic string) (string, error)
}

// Lesson generates lesson content and publishes it as a course
// announcement.
type Lesson struct {
	generator LessonGenerator
	classroom classroom.Service
	logger    *slog.Logger
}

// NewLesson creates the lesson workflow.
func NewLesson(g LessonGenerator, cs classroom.Service, logger *slog.Logger) *Lesson {
	return &Lesson{
		generator: g,
		classroom: cs,
		logger:    logger,
	}
}

type LessonResult struct {
	Content        string
	AnnouncementID string
}

// Run executes generate → announce.
func (wf *Lesson) Run(ctx context.Context, courseID, topic string) (*LessonResult, error) {
	content, err := wf.generator.GenerateLesson(ctx, topic)
	if err != nil {
		wf.logger.Error("lesson generation failed", "course_id", courseID, "topic", topic, "error", err)
		return nil, fmt.Errorf("generate lesson: %w", err)
	}

	announcementID, err := wf.classroom.CreateAnnouncement(ctx, courseID, content)
	if err != nil {
		wf.logger.Error("announcement failed", "course_id", courseID, "topic", topic, "error", err)
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	wf.logger.Info("lesson published", "course_id", courseID, "topic", topic, "announcement_id", announcementID)

	return &LessonResult{Content: content, AnnouncementID: announcementID}, nil
}
