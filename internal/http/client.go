package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrRequestFailed matches every error returned by Client via errors.Is.
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError describes a call that did not complete with a 2xx status.
//
// StatusCode is 0 when the request never got a response (connection refused,
// DNS failure, cancelled context). Err holds the transport or decoding error,
// if any.
type RequestFailedError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s %s: request failed", e.Method, e.Path)
	}
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// Is makes every RequestFailedError match ErrRequestFailed.
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NotFound reports whether the server answered 404.
func (e *RequestFailedError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a RequestFailedError for a 404 response.
func IsNotFound(err error) bool {
	var rf *RequestFailedError
	return errors.As(err, &rf) && rf.NotFound()
}

// Client issues JSON requests against a fixed API base URL.
//
// Client provides:
//   - One round trip per call, no retry and no caching
//   - JSON encoding of request payloads and decoding of responses
//   - A uniform RequestFailedError for any non-2xx status or transport failure
//
// Example usage:
//
//	client := NewClient("http://localhost:3001")
//
//	var songs []model.Song
//	err := client.GetJSON(ctx, "/songs", &songs)
//
//	var created model.Review
//	err = client.PostJSON(ctx, "/reviews", payload, &created)
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying net/http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the API at baseURL.
//
// The client is configured with:
//   - No timeout (each call waits for the server)
//   - "SongReviewHub" User-Agent header
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "SongReviewHub",
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON fetches path and decodes the JSON body into out.
//
// Example:
//
//	var review model.Review
//	err := client.GetJSON(ctx, "/reviews/4", &review)
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON sends in as a JSON body to path and decodes the response into out.
// out may be nil when the response body is not needed.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// PutJSON replaces the resource at path with in and decodes the response into out.
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete removes the resource at path. Any response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Get fetches raw bytes from rawURL.
//
// rawURL may be absolute or relative to the base URL. Use this for small
// binary resources such as album cover images.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := c.resolve(rawURL)
	if err != nil {
		return nil, &RequestFailedError{Method: http.MethodGet, Path: rawURL, Err: err}
	}

	resp, err := c.send(ctx, http.MethodGet, rawURL, target, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestFailedError{Method: http.MethodGet, Path: rawURL, Err: err}
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &RequestFailedError{Method: method, Path: path, Err: fmt.Errorf("encode payload: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	resp, err := c.send(ctx, method, path, c.baseURL+path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailedError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// send performs the request and returns the response only for 2xx statuses.
func (c *Client) send(ctx context.Context, method, path, target string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &RequestFailedError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, &RequestFailedError{Method: method, Path: path, Err: err}
	}
	c.logger.Debug("request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &RequestFailedError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

func (c *Client) resolve(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return rawURL, nil
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}
