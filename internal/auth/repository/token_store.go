package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for revoked token ids: auth:revoked:{jti}
const revokedKeyPrefix = "auth:revoked:"

// TokenStore keeps the revocation list for logged-out tokens. Entries carry
// a TTL matching the token's remaining lifetime, so the list never outgrows
// the set of tokens that could still be presented.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke marks a token id as unusable until it would have expired anyway.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id is on the revocation list.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
