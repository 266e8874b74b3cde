// Package viewer is a display client for a running TaskMaster backend. It
// fetches the aggregated task list and renders it; it never computes
// progress itself.
package viewer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskmaster-go/app/controllers"
	"taskmaster-go/app/models"
)

// Client talks to the backend's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the backend at baseURL. A nil httpClient
// uses one with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       controllers.ErrorBody
}

func (e *APIError) Error() string {
	if e.Body.Error == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s: %s", e.StatusCode, e.Body.Error, e.Body.Message)
}

// Health checks the backend's reachability.
func (c *Client) Health(ctx context.Context) (controllers.HealthResponse, error) {
	var out controllers.HealthResponse
	err := c.get(ctx, "/health", &out)
	return out, err
}

// Echo calls the test endpoint.
func (c *Client) Echo(ctx context.Context) (controllers.EchoResponse, error) {
	var out controllers.EchoResponse
	err := c.get(ctx, "/api/v1/test", &out)
	return out, err
}

// Tasks fetches the aggregated task list.
func (c *Client) Tasks(ctx context.Context) (models.AggregateResult, error) {
	var out models.AggregateResult
	err := c.get(ctx, "/api/v1/tasks", &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(body, &apiErr.Body)
		return apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
