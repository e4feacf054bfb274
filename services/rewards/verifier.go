package rewards

import (
	// Go Internal Packages
	"context"
	"strings"

	// Local Packages
	errors "reward-stream/errors"
	models "reward-stream/models"

	// External Packages
	"go.uber.org/zap"
)

type MerchantAuthenticator interface {
	FindByAPIKey(ctx context.Context, apiKey string) (models.Merchant, error)
}

type TransactionStore interface {
	FindByID(ctx context.Context, id string) (models.Transaction, error)
}

type RewardReader interface {
	FindByTransactionID(ctx context.Context, transactionID string) (models.Reward, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Reward, error)
}

// Verifier is the merchant-facing read path. It authenticates the
// caller, confirms transaction ownership, and returns the recorded
// reward. It mutates nothing.
type Verifier struct {
	logger       *zap.Logger
	merchants    MerchantAuthenticator
	users        UserDirectory
	transactions TransactionStore
	rewards      RewardReader
}

func NewVerifier(logger *zap.Logger, merchants MerchantAuthenticator, users UserDirectory,
	transactions TransactionStore, rewards RewardReader) *Verifier {
	return &Verifier{
		logger:       logger,
		merchants:    merchants,
		users:        users,
		transactions: transactions,
		rewards:      rewards,
	}
}

// Verify runs the gate sequence in order; the first failing gate
// decides the outcome.
func (v *Verifier) Verify(ctx context.Context, apiKey, transactionID string) (models.Reward, error) {
	if strings.TrimSpace(apiKey) == "" {
		return models.Reward{}, errors.MissingAuthorizationErr()
	}
	if strings.TrimSpace(transactionID) == "" {
		return models.Reward{}, errors.EmptyParamErr("transaction_id")
	}

	merchant, err := v.merchants.FindByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(errors.NotFound, err) {
			v.logger.Warn("verification with unknown api key")
			return models.Reward{}, errors.MerchantMismatchErr()
		}
		return models.Reward{}, err
	}
	if !merchant.IsActive {
		v.logger.Warn("verification by inactive merchant", zap.String("merchant_id", merchant.ID))
		return models.Reward{}, errors.MerchantMismatchErr()
	}

	tx, err := v.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return models.Reward{}, err
	}

	if tx.MerchantID != merchant.ID {
		v.logger.Warn("transaction ownership mismatch",
			zap.String("merchant_id", merchant.ID),
			zap.String("transaction_id", transactionID))
		return models.Reward{}, errors.OwnershipMismatchErr()
	}

	if !tx.Processed() {
		return models.Reward{}, errors.TransactionNotSettledErr(transactionID)
	}

	return v.rewards.FindByTransactionID(ctx, transactionID)
}

// ListForUser returns every reward of an active user. Unknown or
// inactive users yield an empty list rather than an error.
func (v *Verifier) ListForUser(ctx context.Context, userID string) ([]models.Reward, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.EmptyParamErr("user_id")
	}

	user, err := v.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(errors.NotFound, err) {
			return []models.Reward{}, nil
		}
		return nil, err
	}
	if !user.IsActive {
		return []models.Reward{}, nil
	}

	return v.rewards.ListByUserID(ctx, userID)
}
