package workflow_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/workflow"
)

func threeQuestions() []assistant.QuizQuestion {
	return []assistant.QuizQuestion{
		{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "Q2?", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
		{Question: "Q3?", Options: []string{"a", "b"}, Answer: "b"},
	}
}

func TestQuizHappyPath(t *testing.T) {
	cs := &fakeClassroom{}
	forms := &fakeForms{publishedURL: "https://forms.example/f1"}
	wf := workflow.NewQuiz(&fakeGenerator{questions: threeQuestions()}, forms, cs, discardLogger())

	result, err := wf.Run(context.Background(), "c1", "Photosynthesis", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forms.items) != 3 {
		t.Fatalf("expected 3 form items, got %d", len(forms.items))
	}
	for i, q := range threeQuestions() {
		if forms.items[i].Question != q.Question {
			t.Errorf("item %d: expected question %q, got %q", i, q.Question, forms.items[i].Question)
		}
		if forms.items[i].Answer != q.Answer {
			t.Errorf("item %d: expected answer %q, got %q", i, q.Answer, forms.items[i].Answer)
		}
		if len(forms.items[i].Options) != len(q.Options) {
			t.Errorf("item %d: expected %d options, got %d", i, len(q.Options), len(forms.items[i].Options))
		}
	}

	if len(cs.courseWork) != 1 {
		t.Fatalf("expected 1 coursework entry, got %d", len(cs.courseWork))
	}
	cw := cs.courseWork[0]
	if cw.LinkURL != "https://forms.example/f1" {
		t.Errorf("expected coursework to reference the form URL, got %q", cw.LinkURL)
	}
	if !strings.Contains(cw.Title, "Photosynthesis") {
		t.Errorf("expected topic in coursework title, got %q", cw.Title)
	}

	if result.FormURL != "https://forms.example/f1" {
		t.Errorf("unexpected form URL: %q", result.FormURL)
	}
	if len(result.Questions) != 3 {
		t.Errorf("expected 3 questions in result, got %d", len(result.Questions))
	}
}

func TestQuizGenerationFailureStopsWorkflow(t *testing.T) {
	cs := &fakeClassroom{}
	forms := &fakeForms{publishedURL: "https://forms.example/f1"}
	wf := workflow.NewQuiz(&fakeGenerator{err: errors.New("bad json")}, forms, cs, discardLogger())

	if _, err := wf.Run(context.Background(), "c1", "Photosynthesis", 3); err == nil {
		t.Fatal("expected error when generation fails, got nil")
	}
	if len(forms.items) != 0 {
		t.Error("expected no form items after generation failure")
	}
	if len(cs.courseWork) != 0 {
		t.Error("expected no coursework after generation failure")
	}
}

func TestQuizItemFailureStopsBeforeCourseWork(t *testing.T) {
	cs := &fakeClassroom{}
	forms := &fakeForms{publishedURL: "https://forms.example/f1", itemErr: errors.New("quota exceeded")}
	wf := workflow.NewQuiz(&fakeGenerator{questions: threeQuestions()}, forms, cs, discardLogger())

	if _, err := wf.Run(context.Background(), "c1", "Photosynthesis", 3); err == nil {
		t.Fatal("expected error when form item fails, got nil")
	}
	if len(cs.courseWork) != 0 {
		t.Error("expected no coursework after form failure")
	}
}
