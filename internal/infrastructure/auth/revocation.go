package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// RevocationStore remembers users whose earlier tokens must be refused,
// for instance after deactivation
type RevocationStore interface {
	// RevokeUser refuses every token of userID issued up to now
	RevokeUser(ctx context.Context, userID uuid.UUID) error
	// IsRevoked reports whether a token of userID issued at issuedAt is refused
	IsRevoked(ctx context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error)
}

// RedisRevocationStore shares revocations between replicas. Entries expire
// after the longest token lifetime.
type RedisRevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRevocationStore wraps client
func NewRedisRevocationStore(client *redis.Client, ttl time.Duration) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, ttl: ttl}
}

func revocationKey(userID uuid.UUID) string {
	return "procurement:revoked:" + userID.String()
}

// RevokeUser implements RevocationStore
func (s *RedisRevocationStore) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	at := strconv.FormatInt(shared.Now().Unix(), 10)
	if err := s.client.Set(ctx, revocationKey(userID), at, s.ttl).Err(); err != nil {
		return fmt.Errorf("revoke user %s: %w", userID, err)
	}
	return nil
}

// IsRevoked implements RevocationStore
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error) {
	val, err := s.client.Get(ctx, revocationKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revocation %s: %w", userID, err)
	}
	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt revocation for %s: %w", userID, err)
	}
	return issuedAt.Unix() <= revokedAt, nil
}

// InMemoryRevocationStore is the single-process RevocationStore
type InMemoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[uuid.UUID]time.Time
}

// NewInMemoryRevocationStore creates an empty store
func NewInMemoryRevocationStore() *InMemoryRevocationStore {
	return &InMemoryRevocationStore{revoked: make(map[uuid.UUID]time.Time)}
}

// RevokeUser implements RevocationStore
func (s *InMemoryRevocationStore) RevokeUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[userID] = shared.Now().Truncate(time.Second)
	return nil
}

// IsRevoked implements RevocationStore
func (s *InMemoryRevocationStore) IsRevoked(_ context.Context, userID uuid.UUID, issuedAt time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.revoked[userID]
	return ok && !issuedAt.After(at), nil
}

var (
	_ RevocationStore = (*RedisRevocationStore)(nil)
	_ RevocationStore = (*InMemoryRevocationStore)(nil)
)
