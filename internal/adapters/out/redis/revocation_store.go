package redis

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "fastfeet:revoked:jti:"

type RevocationStore struct {
	client  *redis.Client
	observe func(time.Duration)
}

type RevocationStoreOption func(*RevocationStore)

// WithCheckObserver receives the latency of every IsRevoked call.
func WithCheckObserver(observe func(time.Duration)) RevocationStoreOption {
	return func(s *RevocationStore) {
		s.observe = observe
	}
}

func NewRevocationStore(client *redis.Client, opts ...RevocationStoreOption) *RevocationStore {
	s := &RevocationStore{
		client:  client,
		observe: func(time.Duration) {},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Revoke remembers tokenID until expiresAt. An already expired token needs no entry.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errs.NewValueIsRequiredError("tokenID")
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	start := time.Now()
	defer func() {
		s.observe(time.Since(start))
	}()

	if tokenID == "" {
		return false, nil
	}

	_, err := s.client.Get(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
