package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/classpilot/backend/internal/llm"
)

// ParseError is returned when the model's output cannot be interpreted,
// so the caller can distinguish "the model answered badly" from "the
// model was unreachable."
type ParseError struct {
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("parse failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("parse failed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// Grade scores a submission against a rubric and returns an integer in
// [0,100]. A score of 0 is a legitimate grade; parse failures and
// out-of-range values are reported as errors, never as a zero score.
func (a *Assistant) Grade(ctx context.Context, submission, rubric string) (int, error) {
	resp, err := a.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: gradeSystemPrompt},
		{Role: llm.RoleUser, Content: buildGradePrompt(submission, rubric)},
	})
	if err != nil {
		return 0, fmt.Errorf("grade submission: %w", err)
	}
	content, err := firstContent(resp)
	if err != nil {
		return 0, fmt.Errorf("grade submission: %w", err)
	}

	score, err := ParseGrade(content)
	if err != nil {
		a.logger.Error("grade parse failed", "output", content, "error", err)
		return 0, fmt.Errorf("grade submission: %w", err)
	}
	return score, nil
}

// ParseGrade interprets raw model output as a base-10 score in [0,100].
func ParseGrade(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)

	score, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Reason: fmt.Sprintf("output %q is not an integer", trimmed), Wrapped: err}
	}
	if score < 0 || score > 100 {
		return 0, &ParseError{Reason: fmt.Sprintf("score %d is outside [0,100]", score)}
	}
	return score, nil
}
