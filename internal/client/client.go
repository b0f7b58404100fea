// Package client is a typed HTTP client for the demo API, used by the
// taskctl CLI and by integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ozgurgul/taskdemo/internal/apierr"
	"github.com/ozgurgul/taskdemo/internal/models"
	"github.com/ozgurgul/taskdemo/internal/store"
)

// APIError is an error response decoded from the API. It preserves the
// server's error code so "entity missing" and "bad link" stay
// distinguishable on the client side.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is an API not-found error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsInvalidReference reports whether err is an API invalid-reference
// error (a task write named a nonexistent user).
func IsInvalidReference(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == apierr.CodeInvalidReference
}

// Health is the response of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Client talks to a demo API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// HealthCheck checks whether the API is reachable and healthy.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, name, email string, age *int) (models.User, error) {
	body := map[string]any{"name": name, "email": email}
	if age != nil {
		body["age"] = *age
	}
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, body, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a specific user.
func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpdateUser fully replaces a user.
func (c *Client) UpdateUser(ctx context.Context, id, name, email string, age *int) (models.User, error) {
	body := map[string]any{"name": name, "email": email}
	if age != nil {
		body["age"] = *age
	}
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, body, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DeleteUser deletes a user and all of its tasks.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, title string, description, userID *string) (models.Task, error) {
	body := map[string]any{"title": title}
	if description != nil {
		body["description"] = *description
	}
	if userID != nil {
		body["user_id"] = *userID
	}
	var t models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, body, &t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// ListTasks returns tasks matching the filter.
func (c *Client) ListTasks(ctx context.Context, filter store.TaskFilter) ([]models.Task, error) {
	query := url.Values{}
	if filter.Completed != nil {
		query.Set("completed", strconv.FormatBool(*filter.Completed))
	}
	if filter.UserID != nil {
		query.Set("user_id", *filter.UserID)
	}
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a specific task.
func (c *Client) GetTask(ctx context.Context, id string) (models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, &t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, id string) (models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id)+"/complete", nil, nil, &t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, nil)
}

// Reset empties the server's store.
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/reset", nil, nil, nil)
}

// Stats returns the server's collection counts.
func (c *Client) Stats(ctx context.Context) (store.Stats, error) {
	var st store.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &st); err != nil {
		return store.Stats{}, err
	}
	return st, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
