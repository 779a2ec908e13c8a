// Package sdk provides the client-side library for the Mergington High
// activities API.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mergington-edu/activities/pkg/schema"
)

// Client talks to a running activities daemon over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the HTTP status and detail message of a failed call.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}

// Activities fetches the full directory keyed by activity name.
func (c *Client) Activities(ctx context.Context) (map[string]schema.Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out map[string]schema.Activity
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}
	return out, nil
}

// Signup enrolls email in the named activity and returns the server's
// confirmation message.
func (c *Client) Signup(ctx context.Context, name, email string) (string, error) {
	return c.mutate(ctx, http.MethodPost, name, "signup", email)
}

// Unregister removes email from the named activity and returns the
// server's confirmation message.
func (c *Client) Unregister(ctx context.Context, name, email string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, name, "participants", email)
}

func (c *Client) mutate(ctx context.Context, method, name, action, email string) (string, error) {
	q := url.Values{"email": {email}}
	target := fmt.Sprintf("%s/activities/%s/%s?%s",
		c.baseURL, url.PathEscape(name), action, q.Encode())

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Message, nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Detail == "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: resp.Status}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
}
