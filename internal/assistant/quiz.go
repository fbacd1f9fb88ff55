package assistant

import (
	"encoding/json"
	"fmt"
)

// QuizQuestion is one multiple-choice question. The answer must be one of
// the options, verbatim.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ParseQuiz extracts a JSON quiz payload from free-form model output and
// validates it. Models wrap JSON in prose or markdown fences often enough
// that the array is located structurally rather than by trusting the whole
// string. Any parse or schema failure invalidates the entire quiz — the
// result is never a partial question list.
func ParseQuiz(raw string) ([]QuizQuestion, error) {
	jsonStr := extractJSONArray(raw)
	if jsonStr == "" {
		return nil, &ParseError{Reason: "no JSON array found in model output"}
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(jsonStr), &questions); err != nil {
		return nil, &ParseError{Reason: "invalid JSON in model output", Wrapped: err}
	}
	if len(questions) == 0 {
		return nil, &ParseError{Reason: "quiz contains no questions"}
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("question %d: %v", i+1, err)}
		}
	}
	return questions, nil
}

func validateQuestion(q QuizQuestion) error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("needs at least 2 options, got %d", len(q.Options))
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not among the options", q.Answer)
}

// extractJSONArray finds the outermost JSON array in a string.
// It handles nested brackets correctly and skips brackets inside
// quoted strings.
func extractJSONArray(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '[' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == ']' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
