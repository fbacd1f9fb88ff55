package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/classpilot/backend/internal/llm"
)

// Assistant composes prompts for the teacher-facing actions and calls the
// language model through the gateway. It holds no state between calls.
type Assistant struct {
	llm    llm.Completer
	logger *slog.Logger
}

// New creates an Assistant backed by the given completer.
func New(completer llm.Completer, logger *slog.Logger) *Assistant {
	return &Assistant{
		llm:    completer,
		logger: logger,
	}
}

// GenerateLesson produces lesson material for the given topic.
func (a *Assistant) GenerateLesson(ctx context.Context, topic string) (string, error) {
	resp, err := a.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: lessonSystemPrompt},
		{Role: llm.RoleUser, Content: buildLessonPrompt(topic)},
	})
	if err != nil {
		return "", fmt.Errorf("generate lesson: %w", err)
	}
	content, err := firstContent(resp)
	if err != nil {
		return "", fmt.Errorf("generate lesson: %w", err)
	}
	return content, nil
}

// GenerateFeedback produces written feedback on a student submission.
func (a *Assistant) GenerateFeedback(ctx context.Context, submission string) (string, error) {
	resp, err := a.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: feedbackSystemPrompt},
		{Role: llm.RoleUser, Content: buildFeedbackPrompt(submission)},
	})
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}
	content, err := firstContent(resp)
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}
	return content, nil
}

// GenerateQuiz produces numQuestions multiple-choice questions about the
// topic. The model's output is parsed and validated; a malformed payload
// yields an error, never a partial quiz.
func (a *Assistant) GenerateQuiz(ctx context.Context, topic string, numQuestions int) ([]QuizQuestion, error) {
	resp, err := a.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: quizSystemPrompt},
		{Role: llm.RoleUser, Content: buildQuizPrompt(topic, numQuestions)},
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	content, err := firstContent(resp)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	questions, err := ParseQuiz(content)
	if err != nil {
		a.logger.Error("quiz parse failed", "topic", topic, "error", err)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	return questions, nil
}

// firstContent extracts choices[0].message.content from a response.
// A response with no choices or empty content carries no usable answer.
func firstContent(resp *llm.Response) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("model returned empty content")
	}
	return content, nil
}
