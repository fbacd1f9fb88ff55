package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Client calls an OpenAI-compatible chat-completion endpoint
// (OpenAI, Ollama, LM Studio, vLLM, etc.).
type Client struct {
	baseURL string // e.g. "https://api.openai.com"
	apiKey  string
	model   string // fixed per deployment, e.g. "gpt-4o-mini"
	client  *http.Client
	logger  *slog.Logger
}

// Compile-time check: *Client satisfies the Completer interface.
var _ Completer = (*Client)(nil)

// NewClient creates a client for the given endpoint. The API key is
// required; main treats a missing key as a fatal configuration error
// before this constructor is ever reached.
func NewClient(baseURL, apiKey, model string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// Complete sends one chat-completion request and returns the decoded
// response. Transport and API-level failures are logged here with a
// context label and returned as errors; callers must not fabricate an
// answer from a failed call.
func (c *Client) Complete(ctx context.Context, messages []Message) (*Response, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("llm request failed", "model", c.model, "error", err)
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("llm returned non-OK status", "model", c.model, "status", resp.StatusCode)
		return nil, fmt.Errorf("llm returned status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error("llm response malformed", "model", c.model, "error", err)
		return nil, fmt.Errorf("failed to decode llm response: %w", err)
	}

	return &out, nil
}
