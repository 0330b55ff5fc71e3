// Package baserow is a small client for the Baserow REST API. Rows are
// addressed by table id and decoded with user field names.
package baserow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted Baserow API.
const DefaultBaseURL = "https://api.baserow.io"

// Observer receives the outcome of every API call. status is 0 when the
// request never produced a response.
type Observer func(operation string, status int, elapsed time.Duration)

// Client talks to one Baserow workspace with a database token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	observe    Observer
}

// Option configures a Client
type Option func(*Client)

// WithObserver installs a callback invoked after each request.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observe = o
	}
}

// NewClient creates a client. A nil httpClient gets a 30 second timeout.
func NewClient(baseURL, apiToken string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      apiToken,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("baserow API error: %d - %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a Baserow 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// do performs the request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, 0, start)
		return fmt.Errorf("failed to perform %s request: %w", operation, err)
	}
	defer resp.Body.Close()
	c.record(operation, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) record(operation string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(operation, status, time.Since(start))
	}
}
