package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type DeadLetterQueue struct {
	client *redis.Client
	logger *zap.Logger
}

func NewDeadLetterQueue(client *redis.Client, logger *zap.Logger) *DeadLetterQueue {
	return &DeadLetterQueue{client: client, logger: logger}
}

// Send stores unprocessable records with the key "reward-dlq:{transaction_id}"
// so an out-of-band reconciliation job can replay them. A non-nil error
// means at least one record was not persisted and the batch must not be
// committed yet.
func (r *DeadLetterQueue) Send(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	failedCount := 0
	for _, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			r.logger.Error("failed to marshal record", zap.Error(err))
			failedCount++
			continue
		}

		key := fmt.Sprintf("reward-dlq:%s", record.Key)
		err = r.client.Set(ctx, key, jsonData, 0).Err()
		if err != nil {
			r.logger.Error("failed to store record", zap.String("key", key), zap.Error(err))
			failedCount++
			continue
		}
	}

	if stored := len(records) - failedCount; stored > 0 {
		r.logger.Info("sent records to dead letter queue", zap.Int("count", stored))
	}
	if failedCount > 0 {
		return fmt.Errorf("failed to dead-letter %d/%d records", failedCount, len(records))
	}
	return nil
}
