package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsboard/backend/internal/application/usecase/ledger"
)

// RedisSummaryCache implements ledger.SummaryCache on Redis. Entries are
// keyed by snapshot version, so a TTL only bounds memory for versions no
// longer current; it never serves stale data.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a new Redis summary cache instance.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached summary for key, or nil on miss.
func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*ledger.Summary, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var summary ledger.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		// A corrupt entry is a miss, not a failure.
		return nil, nil
	}
	return &summary, nil
}

// Set stores summary under key with the configured TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, key string, summary *ledger.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
