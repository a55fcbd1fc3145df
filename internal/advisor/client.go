// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the recommendation service.
const (
	// DefaultBaseURL is the base URL of the local recommendation service.
	DefaultBaseURL = "http://localhost:5000"

	// RecommendationsPath is the fixed endpoint path for recommendations.
	RecommendationsPath = "/get_crop_recommendations"

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB limit
)

// PERFORMANCE: Shared HTTP client with connection pooling for all
// recommendation requests. No client-level timeout; a submission stays
// pending until the service answers or the caller's context ends.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	},
}

// ErrEmptyBaseURL indicates the client was built without a service URL.
var ErrEmptyBaseURL = errors.New("recommendation service URL not configured")

// StatusError represents a non-2xx reply from the recommendation service.
// All non-2xx statuses are treated uniformly regardless of body content.
type StatusError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("service returned %s", e.Status)
}

// IsStatusError reports whether err is a non-2xx service reply.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the crop recommendation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
	}
}

// WithBaseURL sets a custom base URL for the service.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithTimeout sets a request timeout. Zero (the default) leaves requests
// open until the service answers.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		// Copy before mutating: the pooled default client is shared.
		client := *c.httpClient
		client.Timeout = timeout
		c.httpClient = &client
	}
	return c
}

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	if client != nil {
		c.httpClient = client
	}
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// SECURE LOGGING
// =============================================================================

// logRequest logs an outgoing request without exposing the body.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("advisor request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs a reply's status and duration, never the body.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("advisor response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// =============================================================================
// RECOMMENDATIONS CALL
// =============================================================================

// Recommendations submits the farm inputs and returns the parsed service
// reply. There is exactly one attempt per call: no retry, no backoff. Any
// transport failure, non-2xx status, or body parse failure is returned as
// an error; an empty recommendations array is a successful reply.
func (c *Client) Recommendations(ctx context.Context, reqBody RecommendationRequest) (*RecommendationResponse, error) {
	if c.baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + RecommendationsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the pooled connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseSize))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed RecommendationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &parsed, nil
}
