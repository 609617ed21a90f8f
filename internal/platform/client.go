// Package platform provides a client for the workflow platform REST API.
// Each exported method maps one-to-one onto a single API call; there is no
// caching and no coordination between calls.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 2

	// maxErrorBodyBytes caps how much of an error response is kept for the
	// error message.
	maxErrorBodyBytes = 512
)

// Client calls the platform REST API with bearer-token authentication.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
	retries    int
}

// NewClient creates a new platform API client.
func NewClient(baseURL, token string, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log,
		retries:    defaultRetries,
	}
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API error: status %d (request %s): %s", e.StatusCode, e.RequestID, e.Body)
}

// do performs one API call, retrying transport errors and 5xx responses with
// exponential backoff. The response body is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	requestID := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.logger.Debugf("%s %s (request %s, attempt %d)", method, endpoint, requestID, attempt+1)

		resp, err := c.httpClient.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return c.handleResponse(resp, requestID, out)
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = readAPIError(resp, requestID)
			resp.Body.Close()
		}

		if attempt < c.retries {
			c.logger.Warningf("Request %s failed, retrying: %v", requestID, lastErr)
			select {
			case <-time.After(time.Duration(1<<attempt) * 200 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("request failed after %d retries: %w", c.retries, lastErr)
}

func (c *Client) handleResponse(resp *http.Response, requestID string, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp, requestID)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response, requestID string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
		RequestID:  requestID,
	}
}

// get performs a GET call.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST call with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}
