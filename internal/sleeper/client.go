// Package sleeper is a minimal read-only client for the Sleeper fantasy API.
package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// NewClient returns a client for baseURL. Empty baseURL means the public API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: "sleeper-mcp/1.0",
	}
}

// APIError is a non-2xx upstream response. Message holds the response body
// when the upstream sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sleeper api status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("sleeper api status %d", e.Status)
}

// get issues one GET for urlPath (like "/state/nfl") and returns the raw body.
func (c *Client) get(ctx context.Context, urlPath string, query url.Values) ([]byte, error) {
	u := c.BaseURL + urlPath
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return body, nil
}
