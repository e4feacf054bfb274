package redis

import (
	// Go Internal Packages
	"context"
	"testing"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeadLetterQueueSendReportsStorageFailures(t *testing.T) {
	// Unroutable address: every Set fails, so Send must not report
	// success or the consumer would commit and lose the batch.
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	dlq := NewDeadLetterQueue(client, zap.NewNop())
	records := []models.Record{
		{Key: []byte("tx-1"), Value: []byte(`{}`), Topic: "transactions"},
		{Key: []byte("tx-2"), Value: []byte(`{}`), Topic: "transactions"},
	}

	err := dlq.Send(context.Background(), records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2/2")
}

func TestDeadLetterQueueSendEmptyBatch(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	dlq := NewDeadLetterQueue(client, zap.NewNop())
	require.NoError(t, dlq.Send(context.Background(), nil))
}
