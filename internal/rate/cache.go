package rate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "insurance:rate:eth_thb"

type MemoryCache struct {
	mu   sync.RWMutex
	rate Rate
	ok   bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Load(_ context.Context) (Rate, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate, c.ok, nil
}

func (c *MemoryCache) Store(_ context.Context, r Rate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = r
	c.ok = true
	return nil
}

// RedisCache shares the rate between replicas. Entries outlive the service ttl
// so a stale rate is still there when every source is down.
type RedisCache struct {
	client     RedisClient
	key        string
	expiration time.Duration
}

func NewRedisCache(client RedisClient, key string, expiration time.Duration) *RedisCache {
	return &RedisCache{
		client:     client,
		key:        key,
		expiration: expiration,
	}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (c *RedisCache) Load(ctx context.Context) (Rate, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Rate{}, false, nil
		}
		return Rate{}, false, fmt.Errorf("redis get %q: %w", c.key, err)
	}

	var r Rate
	if err := json.Unmarshal(raw, &r); err != nil {
		return Rate{}, false, fmt.Errorf("decode cached rate: %w", err)
	}
	return r, true, nil
}

func (c *RedisCache) Store(ctx context.Context, r Rate) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode rate: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.expiration).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", c.key, err)
	}
	return nil
}
