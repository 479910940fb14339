// Package redisrevoke keeps revoked token ids in Redis with a TTL equal to
// the token's remaining lifetime.
package redisrevoke

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"academy-api/internal/apperr"
	"academy-api/internal/auth"
)

const keyPrefix = "academy:revoked:"

// List implements auth.Revoker.
type List struct {
	client *redis.Client
}

var _ auth.Revoker = (*List)(nil)

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client) *List {
	return &List{client: client}
}

// Open connects to the Redis server at url and checks it answers.
func Open(ctx context.Context, url string) (*List, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, oops.Code("REDIS_CONFIG_INVALID").Wrap(err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, oops.Code("REDIS_CONNECT_FAILED").With("addr", opts.Addr).Wrap(err)
	}
	return &List{client: client}, nil
}

func key(tokenID string) string {
	return keyPrefix + tokenID
}

func (l *List) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, key(tokenID), "1", ttl).Err(); err != nil {
		return apperr.Upstream("redis", err)
	}
	return nil
}

func (l *List) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, apperr.Upstream("redis", err)
	}
	return n > 0, nil
}

func (l *List) Close() error {
	return l.client.Close()
}
