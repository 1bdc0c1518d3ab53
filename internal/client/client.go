// Package client is a minimal Go client for the photo-hunt REST API.
// It never retries a mutating call: session creation and leaderboard
// submission are at-most-once on the server side, so failures surface
// to the caller instead.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"photo-hunt-backend/internal/models"
)

// APIError is a non-2xx response decoded from the server's error
// envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a 400 response carrying field-level validation
// failures.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e.Fields[0].Message)
}

// Client talks to one photo-hunt server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// Photos lists the photo catalog.
func (c *Client) Photos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.do(ctx, http.MethodGet, "/photo", nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// Photo fetches one photo's detail.
func (c *Client) Photo(ctx context.Context, name string) (*models.Photo, error) {
	var photo models.Photo
	if err := c.do(ctx, http.MethodGet, "/photo/"+url.PathEscape(name), nil, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// Leaderboard fetches a photo's leaderboard, fastest first.
func (c *Client) Leaderboard(ctx context.Context, photoName string) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	path := "/photo/" + url.PathEscape(photoName) + "/leaderboard"
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateSession starts a new session against a photo.
func (c *Client) CreateSession(ctx context.Context, photoName string) (*models.Session, error) {
	var session models.Session
	path := "/user?photoid=" + url.QueryEscape(photoName)
	if err := c.do(ctx, http.MethodPost, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Session fetches a session by id.
func (c *Client) Session(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Elapsed fetches the server-computed elapsed time in milliseconds.
func (c *Client) Elapsed(ctx context.Context, id string) (int64, error) {
	var resp struct {
		Time int64 `json:"time"`
	}
	path := "/user/" + url.PathEscape(id) + "/time"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Time, nil
}

// RecordCompletion records the completion time and returns it.
func (c *Client) RecordCompletion(ctx context.Context, id string) (int64, error) {
	var resp struct {
		Message string `json:"message"`
		Time    int64  `json:"time"`
	}
	path := "/user/" + url.PathEscape(id) + "/time"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Time, nil
}

// SubmitName registers the session on the leaderboard. Validation
// failures come back as *ValidationError.
func (c *Client) SubmitName(ctx context.Context, id, name string) error {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/user/"+url.PathEscape(id), body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeError turns an error body into an *APIError, or a
// *ValidationError when the body is a field-error array.
func decodeError(status int, data []byte) error {
	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err == nil && len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return &APIError{StatusCode: status, Message: envelope.Message}
	}
	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
