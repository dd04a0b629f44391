// Package client pkg/client/client.go
//
// Provides the single HTTP transport used to reach the field analytics
// backend. All requests carry JSON content negotiation; callers own
// retries and caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// EnvBaseURL overrides the resolved backend address when set.
	EnvBaseURL = "FARM_API_URL"

	prodBaseURL  = "https://ifa78058-smart-farm-backend.hf.space/api/v1"
	localBaseURL = "http://localhost:8000/api/v1"

	requestTimeout = 30 * time.Second

	// Client-side politeness limit so console-triggered bursts cannot
	// hammer the field server.
	requestsPerSecond = 5
	requestBurst      = 10
)

// ResolveBaseURL picks the backend address: explicit override, then the
// FARM_API_URL environment variable, then the production endpoint for
// deployment builds, then the local development default.
func ResolveBaseURL(override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		return strings.TrimRight(env, "/")
	}

	if prodBuild {
		return prodBaseURL
	}

	return localBaseURL
}

// Client is the configured HTTP transport for the analytics backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Client for the given base address. An empty address is
// resolved via ResolveBaseURL.
func New(baseURL string) *Client {
	resolved := ResolveBaseURL(baseURL)
	log.Printf("Field API client targeting %s", resolved)

	return &Client{
		baseURL: resolved,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// BaseURL returns the resolved backend address, for diagnostics.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request for %s: %w", path, err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(path, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}

	return nil
}

// doMultipart posts a single file under the "file" form field.
func (c *Client) doMultipart(ctx context.Context, path, filename string, file io.Reader, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload payload: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.send(req, path, out)
}

// Download fetches a generated artifact by its host-rooted URL (for
// example /static/missions/mission_x.kml) and returns the payload with
// its media type.
func (c *Client) Download(ctx context.Context, fileURL string) ([]byte, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("rate limit wait: %w", err)
	}

	target := fileURL

	if strings.HasPrefix(fileURL, "/") {
		base, err := url.Parse(c.baseURL)
		if err != nil {
			return nil, "", fmt.Errorf("parse base URL: %w", err)
		}

		target = base.Scheme + "://" + base.Host + fileURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", fileURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read download from %s: %w", fileURL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", newAPIError(fileURL, resp.StatusCode, data)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	return data, mediaType, nil
}
