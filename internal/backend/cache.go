package backend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/skibidoo/storefront/pkg/redis"
)

// Cache is the subset of the redis client used for catalog reads.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CatalogKey(parts ...string) string
}

// cachedRead serves dest from the cache when possible, otherwise calls fetch
// and stores the result. Cache errors never fail the read and failed fetches
// are never stored.
func (c *Client) cachedRead(ctx context.Context, op string, keyParts []string, dest any, fetch func() error) error {
	if c.cache == nil {
		return fetch()
	}

	key := c.cache.CatalogKey(keyParts...)
	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		jsonErr := json.Unmarshal([]byte(raw), dest)
		if jsonErr == nil {
			c.metrics.CacheHit(op)
			return nil
		}
		c.cacheWarn(ctx, op, key, "catalog.cache.decode_failed", jsonErr)
	case !redis.IsMiss(err):
		c.cacheWarn(ctx, op, key, "catalog.cache.get_failed", err)
	}
	c.metrics.CacheMiss(op)

	if err := fetch(); err != nil {
		return err
	}

	payload, err := json.Marshal(dest)
	if err != nil {
		c.cacheWarn(ctx, op, key, "catalog.cache.encode_failed", err)
		return nil
	}
	if err := c.cache.Set(ctx, key, string(payload), c.cacheTTL); err != nil {
		c.cacheWarn(ctx, op, key, "catalog.cache.set_failed", err)
	}
	return nil
}

func (c *Client) cacheWarn(ctx context.Context, op, key, msg string, err error) {
	if c.logg == nil {
		return
	}
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"op":        op,
		"cache_key": key,
		"error":     err.Error(),
	})
	c.logg.Warn(logCtx, msg)
}
