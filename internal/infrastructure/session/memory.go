// Package session provides an in-memory SessionStore implementation. It
// satisfies the same contract as the Redis-backed store and is intended for
// tests and single-process development setups.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

const defaultTTL = 12 * time.Hour

// MemoryStore keeps sessions in a mutex-guarded map. Each token is an
// independent entry, so concurrent create, resolve, and destroy calls never
// interfere across tokens.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore. If ttl <= 0, defaultTTL is used.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a new opaque token bound to the identity.
func (s *MemoryStore) Create(_ context.Context, identity domain.Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	s.mu.Lock()
	s.sessions[token] = domain.Session{
		Token:     token,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the identity bound to the token. Expired sessions resolve
// as unauthenticated; the entry is left in place so Resolve stays
// side-effect free (expired entries are reaped on Destroy or overwrite).
func (s *MemoryStore) Resolve(_ context.Context, token string) (*domain.Identity, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now().UTC()) {
		return nil, domain.ErrUnauthenticated
	}

	identity := sess.Identity
	return &identity, nil
}

// Destroy revokes the token. Destroying an unknown token is a no-op.
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// NewToken returns an unguessable opaque session token: 32 bytes from a
// cryptographically strong random source, base64 URL encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
