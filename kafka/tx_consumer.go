package kafka

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ConsumerConfig struct {
	Brokers        []string
	Name           string
	Topic          string
	RecordsPerPoll int
}

// RecordProcessor handles a poll batch and returns the records that
// should be dead-lettered.
type RecordProcessor interface {
	ProcessRecords(ctx context.Context, records []models.Record) []models.Record
}

type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}

type Consumer struct {
	Client    *kgo.Client
	Config    *ConsumerConfig
	Processor RecordProcessor
	DLQueue   DeadLetterQueue
	Logger    *zap.Logger
}

// NewTxConsumer creates a consumer for the settled-transactions topic
// (PS: Must call Poll to start consuming the records)
func NewTxConsumer(conf *ConsumerConfig, logger *zap.Logger, processor RecordProcessor,
	dlQueue DeadLetterQueue, metrics *kprom.Metrics) (*Consumer, error) {
	c := &Consumer{Config: conf, Processor: processor, DLQueue: dlQueue, Logger: logger}

	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...), // Connects to Kafka brokers
		kgo.ConsumerGroup(conf.Name),     // Specifies the consumer group
		kgo.ConsumeTopics(conf.Topic),    // Specifies a single topic to consume
		kgo.WithHooks(metrics),           // Attaches monitoring hooks
		kgo.DisableAutoCommit(),          // Disables auto-commit
		kgo.BlockRebalanceOnPoll(),       // Blocks rebalancing until the poll loop is running
	}

	client, err := kgo.NewClient(opts...)
	if err != nil || client == nil {
		return nil, err
	}

	c.Client = client
	return c, nil
}

// Poll polls for records from the Kafka broker. Records the processor
// rejects are dead-lettered before the batch is committed, so a poison
// record cannot wedge the partition.
func (c *Consumer) Poll(ctx context.Context) error {
	defer c.Client.Close()

	consumerName := c.Config.Name
	recordsPerPoll := c.Config.RecordsPerPoll

	for {
		// Check if the context is canceled before polling
		if ctx.Err() != nil {
			c.Logger.Warn("polling stopped: context canceled")
			return ctx.Err()
		}

		c.Logger.Info(fmt.Sprintf("%s: polling for records", consumerName))
		fetches := c.Client.PollRecords(ctx, recordsPerPoll)

		if fetches.IsClientClosed() {
			return errors.New("kafka client closed")
		}

		if errors.Is(fetches.Err0(), context.Canceled) {
			return errors.New("context got canceled")
		}

		records := make([]models.Record, len(fetches.Records()))
		for idx, record := range fetches.Records() {
			records[idx] = models.Record{
				Key:   record.Key,
				Value: record.Value,
				Topic: record.Topic,
			}
		}

		failed := c.Processor.ProcessRecords(ctx, records)
		if len(failed) > 0 {
			c.Logger.Error("dead-lettering records", zap.Int("count", len(failed)))
			if err := c.DLQueue.Send(ctx, failed); err != nil {
				c.Logger.Error("failed to dead-letter records", zap.Error(err))
				continue // Retry the batch rather than lose records
			}
		}

		_ = c.Client.CommitRecords(ctx, fetches.Records()...)
	}
}
