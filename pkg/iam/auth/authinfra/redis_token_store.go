package authinfra

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/iam/auth"
)

const revokedKeyPrefix = "auth:revoked:"

// RedisTokenStore implements auth.TokenStore on Redis
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a Redis-backed token revocation store
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
	}
}

// IsRevoked reports whether the token id was revoked
func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errx.Wrap(err, "failed to check token revocation", errx.TypeExternal)
	}
	return n > 0, nil
}

// Revoke marks a token id as revoked until its expiry
func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil // already expired
	}

	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to revoke token", errx.TypeExternal)
	}
	return nil
}
