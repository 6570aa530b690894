package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache stores AI-generated summaries in Redis, keyed by a digest of
// the input text so identical descriptions are summarized only once.
// Key format: summary:<sha256(text)>
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for text and whether one was found.
func (c *SummaryCache) Get(ctx context.Context, text string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(text)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("summary cache get: %w", err)
	}
	return val, true, nil
}

// Set stores the summary for text, expiring after ttl.
func (c *SummaryCache) Set(ctx context.Context, text, summary string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(text), summary, ttl).Err()
}

func (c *SummaryCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "summary:" + hex.EncodeToString(sum[:])
}
