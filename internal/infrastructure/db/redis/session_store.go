package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/infrastructure/session"
)

const sessionKeyPrefix = "session:"

// SessionStore is the durable SessionStore implementation backed by Redis.
// Each session is an independent key holding a JSON snapshot of the identity;
// expiry is delegated to the key TTL. Resolve is a plain GET, so it never
// extends a session's lifetime.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// If ttl <= 0, sessions default to 12 hours.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

type sessionRecord struct {
	IdentityID  string      `json:"identity_id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        domain.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Create issues a new opaque token and stores the identity snapshot under it.
func (s *SessionStore) Create(ctx context.Context, identity domain.Identity) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	payload, err := json.Marshal(sessionRecord{
		IdentityID:  identity.ID,
		Username:    identity.Username,
		DisplayName: identity.DisplayName,
		Role:        identity.Role,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}

// Resolve returns the identity bound to the token. Unknown and expired
// tokens are indistinguishable: Redis has already evicted expired keys.
func (s *SessionStore) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("session resolve: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("session resolve: decode: %w", err)
	}

	return &domain.Identity{
		ID:          rec.IdentityID,
		Username:    rec.Username,
		DisplayName: rec.DisplayName,
		Role:        rec.Role,
	}, nil
}

// Destroy revokes the token. Deleting an unknown token is a no-op.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
