package session

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/hito/internal/database"
)

// TokenKey is the storage key the bearer token lives under.
const TokenKey = "token"

// Store persists the token between runs.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type valueRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// SQLStore keeps the token in the local SQLite key/value table.
type SQLStore struct {
	repo valueRepository
}

// NewSQLStore wraps a local storage repository.
func NewSQLStore(repo valueRepository) *SQLStore {
	return &SQLStore{repo: repo}
}

// Load returns the stored token, or "" when none was saved.
func (s *SQLStore) Load(ctx context.Context) (string, error) {
	token, err := s.repo.GetValue(ctx, TokenKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return "", nil
	}
	return token, err
}

// Save persists token.
func (s *SQLStore) Save(ctx context.Context, token string) error {
	return s.repo.SetValue(ctx, TokenKey, token)
}

// Clear removes the stored token.
func (s *SQLStore) Clear(ctx context.Context) error {
	return s.repo.DeleteValue(ctx, TokenKey)
}

// MemoryStore is a Store that forgets everything on exit.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a MemoryStore seeded with token.
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// NewMemorySession returns a Session backed by a MemoryStore holding token.
func NewMemorySession(token string) *Session {
	return &Session{token: token, store: NewMemoryStore(token)}
}
