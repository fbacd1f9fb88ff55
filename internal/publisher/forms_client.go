package publisher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/classpilot/backend/internal/assistant"
)

// FormsClient talks to the form service's REST API.
type FormsClient struct {
	api apiClient
}

// Compile-time check: *FormsClient satisfies the FormService interface.
var _ FormService = (*FormsClient)(nil)

// NewFormsClient creates a form service client.
func NewFormsClient(baseURL, token string) *FormsClient {
	return &FormsClient{
		api: apiClient{
			baseURL: baseURL,
			token:   token,
			client:  &http.Client{Timeout: 30 * time.Second},
		},
	}
}

func (c *FormsClient) CreateForm(ctx context.Context, title string) (string, error) {
	var out struct {
		ID string `json:"formId"`
	}
	if err := c.api.do(ctx, http.MethodPost, "/v1/forms", map[string]string{"title": title}, &out); err != nil {
		return "", fmt.Errorf("create form: %w", err)
	}
	return out.ID, nil
}

func (c *FormsClient) AddQuizItem(ctx context.Context, formID string, question assistant.QuizQuestion) error {
	path := fmt.Sprintf("/v1/forms/%s/items", url.PathEscape(formID))
	body := map[string]any{
		"type":          "MULTIPLE_CHOICE",
		"title":         question.Question,
		"options":       question.Options,
		"correctAnswer": question.Answer,
	}
	if err := c.api.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("add quiz item: %w", err)
	}
	return nil
}

func (c *FormsClient) PublishedURL(ctx context.Context, formID string) (string, error) {
	path := fmt.Sprintf("/v1/forms/%s/publishedLink", url.PathEscape(formID))
	var out struct {
		URL string `json:"url"`
	}
	if err := c.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", fmt.Errorf("get published url: %w", err)
	}
	return out.URL, nil
}
