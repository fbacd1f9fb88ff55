package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/publisher"
)

// QuizGenerator writes a multiple-choice quiz for a topic.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, topic string, numQuestions int) ([]assistant.QuizQuestion, error)
}

// Quiz generates a quiz, builds a published form from it, and creates a
// coursework entry referencing the form's URL.
type Quiz struct {
	generator QuizGenerator
	forms     publisher.FormService
	classroom classroom.Service
	logger    *slog.Logger
}

// NewQuiz creates the quiz workflow.
func NewQuiz(g QuizGenerator, forms publisher.FormService, cs classroom.Service, logger *slog.Logger) *Quiz {
	return &Quiz{
		generator: g,
		forms:     forms,
		classroom: cs,
		logger:    logger,
	}
}

type QuizResult struct {
	CourseworkID string
	FormURL      string
	Questions    []assistant.QuizQuestion
}

// Run executes generate → parse (inside the generator) → build form →
// create coursework. Every parsed question becomes one form item.
func (wf *Quiz) Run(ctx context.Context, courseID, topic string, numQuestions int) (*QuizResult, error) {
	questions, err := wf.generator.GenerateQuiz(ctx, topic, numQuestions)
	if err != nil {
		wf.logger.Error("quiz generation failed", "course_id", courseID, "topic", topic, "error", err)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	title := fmt.Sprintf("Quiz: %s", topic)

	formID, err := wf.forms.CreateForm(ctx, title)
	if err != nil {
		wf.logger.Error("form creation failed", "course_id", courseID, "topic", topic, "error", err)
		return nil, fmt.Errorf("create form: %w", err)
	}
	for i, q := range questions {
		if err := wf.forms.AddQuizItem(ctx, formID, q); err != nil {
			wf.logger.Error("form item failed", "form_id", formID, "item", i+1, "error", err)
			return nil, fmt.Errorf("add form item %d: %w", i+1, err)
		}
	}
	formURL, err := wf.forms.PublishedURL(ctx, formID)
	if err != nil {
		wf.logger.Error("form publish failed", "form_id", formID, "error", err)
		return nil, fmt.Errorf("publish form: %w", err)
	}

	courseworkID, err := wf.classroom.CreateCourseWork(ctx, courseID, classroom.CourseWork{
		Title:       title,
		Description: fmt.Sprintf("Auto-generated quiz on %s. Answer via the attached form.", topic),
		WorkType:    "ASSIGNMENT",
		LinkURL:     formURL,
	})
	if err != nil {
		wf.logger.Error("coursework creation failed", "course_id", courseID, "form_url", formURL, "error", err)
		return nil, fmt.Errorf("create coursework: %w", err)
	}

	wf.logger.Info("quiz published",
		"course_id", courseID, "topic", topic, "questions", len(questions), "coursework_id", courseworkID)

	return &QuizResult{CourseworkID: courseworkID, FormURL: formURL, Questions: questions}, nil
}
