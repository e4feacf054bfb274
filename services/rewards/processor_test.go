package rewards

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"testing"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func record(t *testing.T, tx models.Transaction) models.Record {
	t.Helper()
	value, err := json.Marshal(tx)
	require.NoError(t, err)
	return models.Record{Key: []byte(tx.ID), Value: value, Topic: "transactions"}
}

func TestProcessorDeadLettersPoisonRecords(t *testing.T) {
	f := newIssuerFixture(&fixedRand{})
	p := NewProcessor(zap.NewNop(), f.issuer)

	poison := models.Record{Key: []byte("bad"), Value: []byte("{not-json"), Topic: "transactions"}
	failed := p.ProcessRecords(context.Background(), []models.Record{poison})
	require.Len(t, failed, 1)
	assert.Equal(t, poison, failed[0])
}

func TestProcessorDropsUnsettledTransactions(t *testing.T) {
	f := newIssuerFixture(&fixedRand{})
	p := NewProcessor(zap.NewNop(), f.issuer)

	tx := settledTx("tx-20")
	tx.Status = "authorized"

	failed := p.ProcessRecords(context.Background(), []models.Record{record(t, tx)})
	assert.Empty(t, failed)
	assert.Equal(t, 0, f.rewards.saves)
}

func TestProcessorIssuesForSettledTransactions(t *testing.T) {
	f := newIssuerFixture(&fixedRand{floats: []float64{0.9}})
	p := NewProcessor(zap.NewNop(), f.issuer)

	failed := p.ProcessRecords(context.Background(), []models.Record{record(t, settledTx("tx-21"))})
	assert.Empty(t, failed)

	saved, err := f.rewards.FindByTransactionID(context.Background(), "tx-21")
	require.NoError(t, err)
	assert.Equal(t, models.RewardIssued, saved.Status)
}
