package redis

import (
	// Go Internal Packages
	"context"
	"fmt"
	"time"

	// External Packages
	"github.com/redis/go-redis/v9"
)

// IssuanceLock serializes reward issuance per transaction id. Only one
// consumer may hold the lock for a transaction at a time, which keeps
// the disbursement call at-most-once even with concurrent consumers.
type IssuanceLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIssuanceLock(client *redis.Client, ttl time.Duration) *IssuanceLock {
	return &IssuanceLock{client: client, ttl: ttl}
}

func lockKey(transactionID string) string {
	return fmt.Sprintf("reward-lock:%s", transactionID)
}

// Acquire takes the issuance lock for a transaction. It returns false
// when another holder already owns it.
func (l *IssuanceLock) Acquire(ctx context.Context, transactionID string) (bool, error) {
	return l.client.SetNX(ctx, lockKey(transactionID), 1, l.ttl).Result()
}

// Release drops the lock once the issuance outcome is persisted.
func (l *IssuanceLock) Release(ctx context.Context, transactionID string) error {
	return l.client.Del(ctx, lockKey(transactionID)).Err()
}
