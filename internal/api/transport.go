package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request id so client and server logs can be
// correlated.
const RequestIDHeader = "X-Request-ID"

// Credentials is the token holder the transport reads from and clears on 401.
type Credentials interface {
	Token() string
	Clear(ctx context.Context) error
}

// transport attaches the bearer token to every request, including the token
// endpoint, and drops the session when the server answers 401.
type transport struct {
	base   http.RoundTripper
	creds  Credentials
	logger *slog.Logger
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	var token string
	if t.creds != nil {
		token = t.creds.Token()
	}
	if token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := t.logger.With("request_id", requestID, "method", req.Method, "url", req.URL.Redacted())
	logger.Debug("api request", "bytes", req.ContentLength, "authorized", token != "")

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		logger.Warn("api request failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	logger.Debug("api response", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized && t.creds != nil {
		logger.Warn("unauthorized response, clearing session")
		if err := t.creds.Clear(context.WithoutCancel(req.Context())); err != nil {
			logger.Error("failed to clear session", "error", err)
		}
	}

	return resp, nil
}
