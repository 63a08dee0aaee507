package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/everafter/planner-api/internal/core/domain"
)

const (
	publicContentKey = "content:public"
	contentCacheTTL  = 5 * time.Minute
)

// ContentCache caches the public content listing in Redis. The listing is
// read by every anonymous visitor of the wedding site and changes rarely, so
// it is the one hot read worth caching. All failures degrade to a miss.
type ContentCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewContentCache creates a ContentCache wrapping the given Redis client.
func NewContentCache(client *redis.Client, log zerolog.Logger) *ContentCache {
	return &ContentCache{client: client, log: log}
}

// GetPublic returns the cached public listing, or false on miss or error.
func (c *ContentCache) GetPublic(ctx context.Context) ([]domain.Content, bool) {
	raw, err := c.client.Get(ctx, publicContentKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("content cache read failed")
		}
		return nil, false
	}

	var items []domain.Content
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("content cache entry corrupt, dropping")
		_ = c.client.Del(ctx, publicContentKey).Err()
		return nil, false
	}
	return items, true
}

// SetPublic stores the public listing with a TTL as a backstop for missed
// invalidations.
func (c *ContentCache) SetPublic(ctx context.Context, items []domain.Content) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, publicContentKey, raw, contentCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("content cache write failed")
	}
}

// Invalidate drops the cached listing after any content mutation.
func (c *ContentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, publicContentKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("content cache invalidation failed")
	}
}
