// Package session caches the logged-in identity between requests. The store
// is keyed by the token id embedded in the JWT; a Redis backend survives
// process restarts, the in-memory backend does not.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// ErrNotFound is returned when no live session exists for a token id.
var ErrNotFound = errors.New("session not found")

// Session is the cached login state for one issued token.
type Session struct {
	TokenID   string          `json:"token_id"`
	Identity  domain.Identity `json:"identity"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Store defines the session cache contract.
type Store interface {
	Put(ctx context.Context, sess Session) error
	Get(ctx context.Context, tokenID string) (*Session, error)
	Delete(ctx context.Context, tokenID string) error
	Ping(ctx context.Context) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore returns an in-process session cache.
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (s *memoryStore) Put(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.TokenID] = sess
	return nil
}

func (s *memoryStore) Get(ctx context.Context, tokenID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[tokenID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, tokenID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *memoryStore) Delete(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	return nil
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return nil
}
