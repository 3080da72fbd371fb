package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-hexagonal-auth/internal/application"
	"github.com/oksasatya/go-hexagonal-auth/pkg/helpers"
)

const DefaultProfileTTL = 5 * time.Minute

// ProfileCache stores profile projections in redis as JSON. Password
// hashes never enter the cache.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

func profileKey(userID string) string {
	return "user:profile:" + userID
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*application.UserProfileResult, error) {
	var p application.UserProfileResult
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, profileKey(userID), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (c *ProfileCache) Set(ctx context.Context, p *application.UserProfileResult) error {
	return helpers.RedisSetJSON(ctx, c.rdb, profileKey(p.UserID), p, c.ttl)
}

var _ application.ProfileCache = (*ProfileCache)(nil)
