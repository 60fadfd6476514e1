package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSyncTTL = 10 * time.Minute

// SyncTracker remembers which users were synced recently so the lazy user
// upsert is not repeated on every request.
// Key format: user_sync:<normalized email>
type SyncTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSyncTracker creates a SyncTracker wrapping the given Redis client.
// A non-positive ttl falls back to defaultSyncTTL.
func NewSyncTracker(client *redis.Client, ttl time.Duration) *SyncTracker {
	if ttl <= 0 {
		ttl = defaultSyncTTL
	}
	return &SyncTracker{client: client, ttl: ttl}
}

// RecentlySynced reports whether the user was synced within the TTL.
func (t *SyncTracker) RecentlySynced(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("sync marker check: %w", err)
	}
	return n > 0, nil
}

// MarkSynced records a successful sync (expires after the TTL).
func (t *SyncTracker) MarkSynced(ctx context.Context, email string) error {
	if err := t.client.Set(ctx, t.key(email), "1", t.ttl).Err(); err != nil {
		return fmt.Errorf("sync marker set: %w", err)
	}
	return nil
}

func (t *SyncTracker) key(email string) string {
	return fmt.Sprintf("user_sync:%s", email)
}
