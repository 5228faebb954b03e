package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/fleetsvc/domain"
)

// DenylistRepositoryImpl implements domain.TokenDenylist using Redis.
// Revoked token ids live only until the token's natural expiry; Redis
// TTL handles the cleanup.
type DenylistRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewDenylistRepository creates a new token denylist
func NewDenylistRepository(client *redis.Client) domain.TokenDenylist {
	return &DenylistRepositoryImpl{
		client: client,
		prefix: "revoked:",
	}
}

// Revoke implements domain.TokenDenylist
func (r *DenylistRepositoryImpl) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already past natural expiry; nothing to revoke.
		return nil
	}
	return r.client.Set(ctx, r.prefix+jti, "1", ttl).Err()
}

// IsRevoked implements domain.TokenDenylist
func (r *DenylistRepositoryImpl) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := r.client.Get(ctx, r.prefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NoopDenylist is wired when revocation is disabled: logout stays a
// client-side credential erasure and every token remains valid until
// its natural expiry.
type NoopDenylist struct{}

// NewNoopDenylist creates a denylist that never revokes
func NewNoopDenylist() domain.TokenDenylist {
	return NoopDenylist{}
}

// Revoke implements domain.TokenDenylist
func (NoopDenylist) Revoke(ctx context.Context, jti string, until time.Time) error { return nil }

// IsRevoked implements domain.TokenDenylist
func (NoopDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) { return false, nil }
