// Package session holds the bearer token for the current login. A non-empty
// token is the only signal of being authenticated.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the in-memory view of the persisted token. It is safe for
// concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
	store Store
}

// New loads any previously saved token from store.
func New(ctx context.Context, store Store) (*Session, error) {
	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{token: token, store: store}, nil
}

// Token returns the current bearer token or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is present. The token is not
// validated locally; the server decides.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken stores a freshly issued token.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	slog.Debug("session token stored")
	return nil
}

// Clear forgets the token in memory and in the store. The in-memory token is
// dropped even if the store fails.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if hadToken {
		slog.Debug("session token cleared")
	}
	return nil
}

// Claims is the informational subset of the token payload.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Claims decodes the token without verifying its signature. It returns nil
// when there is no token or it is not a JWT. Only used for display.
func (s *Session) Claims() *Claims {
	token := s.Token()
	if token == "" {
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	claims := &Claims{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims
}
