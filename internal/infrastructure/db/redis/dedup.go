package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/transitline/fleet-tracking/internal/api/metrics"
)

const dedupTTL = time.Hour

// dedupClient is the subset of *redis.Client used for deduplication.
type dedupClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DedupChecker provides idempotency checks for location reports backed by Redis.
// Key format: dedup:loc:<bus_id>:<unix_nano>
type DedupChecker struct {
	client dedupClient
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return newDedupChecker(client)
}

func newDedupChecker(client dedupClient) *DedupChecker {
	return &DedupChecker{client: client, ttl: dedupTTL}
}

// Claim reserves the report for busID at ts with SET NX. It returns false
// when another worker already holds or applied it.
func (d *DedupChecker) Claim(ctx context.Context, busID string, ts time.Time) (bool, error) {
	ok, err := d.client.SetNX(ctx, dedupKey(busID, ts), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup claim: %w", err)
	}
	if !ok {
		metrics.DedupTotal.WithLabelValues("hit").Inc()
		return false, nil
	}
	metrics.DedupTotal.WithLabelValues("miss").Inc()
	return true, nil
}

// Release drops a claim so the report can be processed again.
func (d *DedupChecker) Release(ctx context.Context, busID string, ts time.Time) error {
	if err := d.client.Del(ctx, dedupKey(busID, ts)).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

func dedupKey(busID string, ts time.Time) string {
	return fmt.Sprintf("dedup:loc:%s:%d", busID, ts.UnixNano())
}
