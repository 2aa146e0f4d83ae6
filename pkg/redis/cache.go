package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under CacheName with a fixed TTL.
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a named cache. A zero ttl falls back to the client's DefaultCacheTTL.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = client.config.DefaultCacheTTL
	}
	return &Cache{
		client: client,
		name:   name,
		ttl:    ttl,
	}
}

func (c *Cache) buildCacheKey(key string) string {
	return c.client.Key(c.name, key)
}

// Get loads the value stored at key into dest. It returns ErrCacheMiss when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to deserialize cached value: %w", err)
	}
	return nil
}

// Set stores value at key for the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}
