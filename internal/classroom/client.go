package classroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the classroom platform's REST API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// Compile-time check: *Client satisfies the Service interface.
var _ Service = (*Client)(nil)

// NewClient creates a classroom API client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetSubmissions(ctx context.Context, courseID, courseworkID, studentID string) ([]Submission, error) {
	path := fmt.Sprintf("/v1/courses/%s/courseWork/%s/studentSubmissions?userId=%s",
		url.PathEscape(courseID), url.PathEscape(courseworkID), url.QueryEscape(studentID))

	var out struct {
		StudentSubmissions []Submission `json:"studentSubmissions"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get submissions: %w", err)
	}
	return out.StudentSubmissions, nil
}

func (c *Client) PatchGrade(ctx context.Context, courseID, courseworkID, submissionID string, grade int) error {
	path := fmt.Sprintf("/v1/courses/%s/courseWork/%s/studentSubmissions/%s?updateMask=assignedGrade,draftGrade",
		url.PathEscape(courseID), url.PathEscape(courseworkID), url.PathEscape(submissionID))

	body := map[string]int{
		"assignedGrade": grade,
		"draftGrade":    grade,
	}
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("patch grade: %w", err)
	}
	return nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, courseID, text string) (string, error) {
	path := fmt.Sprintf("/v1/courses/%s/announcements", url.PathEscape(courseID))

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"text": text}, &out); err != nil {
		return "", fmt.Errorf("create announcement: %w", err)
	}
	return out.ID, nil
}

func (c *Client) CreateCourseWork(ctx context.Context, courseID string, cw CourseWork) (string, error) {
	path := fmt.Sprintf("/v1/courses/%s/courseWork", url.PathEscape(courseID))

	payload := map[string]any{
		"title":    cw.Title,
		"workType": cw.WorkType,
	}
	if cw.Description != "" {
		payload["description"] = cw.Description
	}
	if cw.LinkURL != "" {
		payload["materials"] = []map[string]any{
			{"link": map[string]string{"url": cw.LinkURL}},
		}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, path, payload, &out); err != nil {
		return "", fmt.Errorf("create coursework: %w", err)
	}
	return out.ID, nil
}

func (c *Client) AttachLink(ctx context.Context, courseID, courseworkID, submissionID, linkURL string) error {
	path := fmt.Sprintf("/v1/courses/%s/courseWork/%s/studentSubmissions/%s:modifyAttachments",
		url.PathEscape(courseID), url.PathEscape(courseworkID), url.PathEscape(submissionID))

	body := map[string]any{
		"addAttachments": []map[string]any{
			{"link": map[string]string{"url": linkURL}},
		},
	}
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("attach link: %w", err)
	}
	return nil
}

// do performs one JSON request against the API. A 404 maps to ErrNotFound;
// other non-2xx statuses become errors carrying the status code.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("classroom API returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
