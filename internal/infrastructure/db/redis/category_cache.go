package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey = "catalog:categories"
	categoriesTTL = 10 * time.Minute
)

// CategoryCache caches the distinct category listing in Redis. The TTL is a
// backstop; catalog mutations invalidate the key explicitly.
type CategoryCache struct {
	client *redis.Client
}

// NewCategoryCache creates a CategoryCache wrapping the given Redis client.
func NewCategoryCache(client *redis.Client) *CategoryCache {
	return &CategoryCache{client: client}
}

// Get returns the cached listing, or ok=false on a miss.
func (c *CategoryCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("category cache get: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, false, fmt.Errorf("category cache decode: %w", err)
	}
	return categories, true, nil
}

// Set stores the listing (expires after categoriesTTL).
func (c *CategoryCache) Set(ctx context.Context, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	return c.client.Set(ctx, categoriesKey, raw, categoriesTTL).Err()
}

// Invalidate drops the cached listing.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoriesKey).Err()
}
