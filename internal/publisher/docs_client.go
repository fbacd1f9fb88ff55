package publisher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DocsClient talks to the document service's REST API.
type DocsClient struct {
	api apiClient
}

// Compile-time check: *DocsClient satisfies the DocumentService interface.
var _ DocumentService = (*DocsClient)(nil)

// NewDocsClient creates a document service client.
func NewDocsClient(baseURL, token string) *DocsClient {
	return &DocsClient{
		api: apiClient{
			baseURL: baseURL,
			token:   token,
			client:  &http.Client{Timeout: 30 * time.Second},
		},
	}
}

func (c *DocsClient) CreateDocument(ctx context.Context, title string) (string, error) {
	var out struct {
		ID string `json:"documentId"`
	}
	if err := c.api.do(ctx, http.MethodPost, "/v1/documents", map[string]string{"title": title}, &out); err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}
	return out.ID, nil
}

func (c *DocsClient) SetBody(ctx context.Context, docID, text string) error {
	path := fmt.Sprintf("/v1/documents/%s/body", url.PathEscape(docID))
	if err := c.api.do(ctx, http.MethodPut, path, map[string]string{"text": text}, nil); err != nil {
		return fmt.Errorf("set document body: %w", err)
	}
	return nil
}

func (c *DocsClient) ShareableURL(ctx context.Context, docID string) (string, error) {
	path := fmt.Sprintf("/v1/documents/%s/shareLink", url.PathEscape(docID))
	var out struct {
		URL string `json:"url"`
	}
	if err := c.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", fmt.Errorf("get shareable url: %w", err)
	}
	return out.URL, nil
}
