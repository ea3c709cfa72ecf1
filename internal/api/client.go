// Package api is the REST client for the todo backend. The backend owns all
// persistence and business logic; this client only serializes criteria and
// payloads and decodes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"todoterm/internal/model"
)

// DefaultBaseURL matches the backend's development address. Deployments
// point the client elsewhere via config (see internal/config).
const DefaultBaseURL = "http://localhost:8000"

type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject an httptest transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.hc = hc
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Error is a non-2xx response. Detail carries the backend's human-readable
// message when the body had one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Detail) != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Message resolves err to the text shown to the user: the backend's detail
// message when present, then the error's own text, then a fallback naming
// the address the backend is expected at.
func Message(err error, baseURL string) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return "request failed; make sure the backend is running on " + baseURL
}

func (c *Client) List(ctx context.Context, crit model.Criteria) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos?"+EncodeCriteria(crit), nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) Statistics(ctx context.Context) (model.Statistics, error) {
	var stats model.Statistics
	if err := c.do(ctx, http.MethodGet, "/api/todos/statistics", nil, &stats); err != nil {
		return model.Statistics{}, err
	}
	return stats, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &body); err != nil {
		return nil, err
	}
	return body.Categories, nil
}

func (c *Client) Create(ctx context.Context, draft model.Draft) (model.Todo, error) {
	var todo model.Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", draft, &todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (c *Client) Update(ctx context.Context, id int, draft model.Draft) (model.Todo, error) {
	var todo model.Todo
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), draft, &todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// SetCompleted sends a partial update flipping only the completed flag.
func (c *Client) SetCompleted(ctx context.Context, id int, completed bool) (model.Todo, error) {
	payload := map[string]bool{"completed": completed}
	var todo model.Todo
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), payload, &todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		// Drain so the connection can be reused (DELETE returns 204).
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	// The backend sends {"detail": "..."} on errors; anything else is kept
	// generic rather than dumping a body at the user.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var body struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Detail = strings.TrimSpace(body.Detail)
		}
	}
	return apiErr
}
