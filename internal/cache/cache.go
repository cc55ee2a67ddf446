package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const defaultTTL = 5 * time.Minute

// Cache is a thin JSON cache over Redis, used for read-mostly payloads like
// the site settings. All methods are safe on a nil Cache so the API keeps
// working when REDIS_URL is unset or Redis is down.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, cache disabled")
		return nil
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    defaultTTL,
	}
}

// GetJSON loads key into v, reporting whether it was a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	return json.Unmarshal(raw, v) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
