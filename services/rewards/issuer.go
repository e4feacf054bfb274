package rewards

import (
	// Go Internal Packages
	"context"
	"time"

	// Local Packages
	errors "reward-stream/errors"
	models "reward-stream/models"
	payments "reward-stream/payments"

	// External Packages
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MerchantDirectory interface {
	FindByID(ctx context.Context, id string) (models.Merchant, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (models.User, error)
}

type RewardStore interface {
	Save(ctx context.Context, reward models.Reward) error
	FindByTransactionID(ctx context.Context, transactionID string) (models.Reward, error)
}

// IssuanceLock keeps issuance at-most-once per transaction id across
// concurrent consumers.
type IssuanceLock interface {
	Acquire(ctx context.Context, transactionID string) (bool, error)
	Release(ctx context.Context, transactionID string) error
}

// Issuer sequences directory lookups, the reward decision, and the
// disbursement call, and persists a reward with a terminal status.
// Expected failure modes never surface as errors; they end up encoded
// in the reward status. Returned errors mean the outcome could not be
// decided or recorded and the record should be replayed.
type Issuer struct {
	logger    *zap.Logger
	merchants MerchantDirectory
	users     UserDirectory
	rewards   RewardStore
	gateway   payments.Gateway
	engine    *Engine
	lock      IssuanceLock
}

func NewIssuer(logger *zap.Logger, merchants MerchantDirectory, users UserDirectory,
	rewards RewardStore, gateway payments.Gateway, engine *Engine, lock IssuanceLock) *Issuer {
	return &Issuer{
		logger:    logger,
		merchants: merchants,
		users:     users,
		rewards:   rewards,
		gateway:   gateway,
		engine:    engine,
		lock:      lock,
	}
}

// ProcessTransaction issues the reward for a settled transaction.
// Replayed transactions return the already persisted reward unchanged.
func (i *Issuer) ProcessTransaction(ctx context.Context, tx models.Transaction) (models.Reward, error) {
	existing, err := i.rewards.FindByTransactionID(ctx, tx.ID)
	if err == nil {
		i.logger.Info("reward already issued for transaction",
			zap.String("transaction_id", tx.ID), zap.String("reward_id", existing.ID))
		return existing, nil
	}
	if !errors.Is(errors.NotFound, err) {
		return models.Reward{}, err
	}

	acquired, err := i.lock.Acquire(ctx, tx.ID)
	if err != nil {
		return models.Reward{}, errors.E(errors.Internal, "issuance lock failed", err)
	}
	if !acquired {
		return models.Reward{}, errors.E(errors.Conflict, "issuance already in progress", nil)
	}
	defer func() {
		_ = i.lock.Release(ctx, tx.ID)
	}()

	reward := i.evaluate(ctx, tx)
	if err := i.rewards.Save(ctx, reward); err != nil {
		return models.Reward{}, err
	}

	i.logger.Info("reward recorded",
		zap.String("reward_id", reward.ID),
		zap.String("transaction_id", tx.ID),
		zap.String("status", string(reward.Status)),
		zap.Float64("amount", reward.Amount))
	return reward, nil
}

func (i *Issuer) evaluate(ctx context.Context, tx models.Transaction) models.Reward {
	reward := models.Reward{
		ID:            uuid.NewString(),
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		MerchantID:    tx.MerchantID,
		Amount:        0,
		Percentage:    0,
		Status:        models.RewardPending,
		CreatedAt:     time.Now().UTC(),
	}

	merchant, err := i.merchants.FindByID(ctx, tx.MerchantID)
	if err != nil || !merchant.IsActive {
		i.logger.Warn("merchant gate failed",
			zap.String("merchant_id", tx.MerchantID), zap.Error(err))
		reward.Status = models.RewardFailed
		return reward
	}

	user, err := i.users.FindByID(ctx, tx.UserID)
	if err != nil || !user.IsActive {
		i.logger.Warn("user gate failed",
			zap.String("user_id", tx.UserID), zap.Error(err))
		reward.Status = models.RewardFailed
		return reward
	}

	granted, percentage := i.engine.Decide(tx)
	if !granted {
		// A declined draw is still a successful outcome, distinct
		// from a failed lookup or disbursement.
		reward.Status = models.RewardIssued
		return reward
	}

	payout := reward
	payout.Amount = Amount(tx, percentage)
	payout.Percentage = percentage

	if err := i.gateway.Disburse(ctx, payout); err != nil {
		i.logger.Error("disbursement failed",
			zap.String("reward_id", reward.ID),
			zap.String("transaction_id", tx.ID),
			zap.Error(err))
		reward.Status = models.RewardFailed
		return reward
	}

	payout.Status = models.RewardIssued
	return payout
}
