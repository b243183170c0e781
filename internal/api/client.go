// Package api is the single HTTP wrapper every call to the tracker backend
// goes through.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request describes one API call. Path is relative to the client's base URL.
// At most one of Body (sent as JSON) and Form (sent form-encoded) is used.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   url.Values
}

// Client talks to the tracker API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// WithHTTPClient sets the client whose transport is wrapped. Useful for
// httptest servers.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger requests are recorded to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewClient returns a client rooted at baseURL. creds supplies the bearer
// token and is cleared when the server answers 401; it may be nil.
func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	base := http.DefaultTransport
	if o.httpClient != nil && o.httpClient.Transport != nil {
		base = o.httpClient.Transport
	}

	hc := &http.Client{
		Transport: &transport{base: base, creds: creds, logger: o.logger.With("component", "api")},
		Timeout:   o.timeout,
	}
	if o.httpClient != nil {
		hc.CheckRedirect = o.httpClient.CheckRedirect
		hc.Jar = o.httpClient.Jar
		if o.timeout == 0 {
			hc.Timeout = o.httpClient.Timeout
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  o.logger,
	}
}

// BaseURL returns the root every path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// URL resolves path against the base URL.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// HTTPClient exposes the instrumented client so other libraries (oauth2)
// share the same token handling and logging.
func (c *Client) HTTPClient() *http.Client { return c.http }

// Do performs r and decodes a JSON response into out (which may be nil).
// Failures are returned as *Error: Status 0 when no response arrived,
// otherwise the response status and decoded body.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Err: fmt.Errorf("%s %s: %w", r.Method, r.Path, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{
			Status: resp.StatusCode,
			Body:   decodeBody(data),
			Err:    fmt.Errorf("%s %s: %s", r.Method, r.Path, resp.Status),
		}
		c.logger.Warn("api error response",
			"method", r.Method,
			"path", r.Path,
			"status", resp.StatusCode,
			"body", apiErr.Body,
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	// raw bodies are left for DecodeList, which tolerates non-arrays
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Status: resp.StatusCode,
			Body:   decodeBody(data),
			Err:    fmt.Errorf("decode %s %s response: %w", r.Method, r.Path, err),
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.URL(r.Path)
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.Form != nil:
		body = strings.NewReader(r.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.Body != nil:
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// DecodeList decodes raw as a JSON array. Anything that is not an array,
// including null, yields an empty list.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// IsCanceled reports whether err came from a canceled context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
