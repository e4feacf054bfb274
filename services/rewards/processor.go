package rewards

import (
	// Go Internal Packages
	"context"
	"encoding/json"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"go.uber.org/zap"
)

// Processor feeds consumed transaction records through the issuer.
type Processor struct {
	logger *zap.Logger
	issuer *Issuer
}

func NewProcessor(logger *zap.Logger, issuer *Issuer) *Processor {
	return &Processor{logger: logger, issuer: issuer}
}

// ProcessRecords handles one poll batch and returns the records that
// could not be processed, so the consumer can dead-letter them.
func (p *Processor) ProcessRecords(ctx context.Context, records []models.Record) []models.Record {
	var failed []models.Record
	for _, record := range records {
		if err := p.processRecord(ctx, record); err != nil {
			failed = append(failed, record)
		}
	}
	return failed
}

func (p *Processor) processRecord(ctx context.Context, record models.Record) error {
	var tx models.Transaction
	if err := json.Unmarshal(record.Value, &tx); err != nil {
		p.logger.Error("failed to unmarshal transaction", zap.Error(err))
		return err
	}

	if tx.ID == "" {
		p.logger.Warn("dropping transaction without id", zap.String("topic", record.Topic))
		return nil
	}
	if !tx.Processed() {
		// Only settled transactions are eligible; the checkout system
		// republishes once a transaction settles.
		p.logger.Warn("skipping unsettled transaction",
			zap.String("transaction_id", tx.ID), zap.String("status", tx.Status))
		return nil
	}

	_, err := p.issuer.ProcessTransaction(ctx, tx)
	return err
}
