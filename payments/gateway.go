package payments

import (
	// Go Internal Packages
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	// Local Packages
	errors "reward-stream/errors"
	models "reward-stream/models"

	// External Packages
	"go.uber.org/zap"
)

// Gateway transfers a reward amount to a user through the external
// payment processor. Implementations must honor the context deadline.
type Gateway interface {
	Disburse(ctx context.Context, reward models.Reward) error
}

type ClientConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client is the HTTP payout processor client. Every call is bounded by
// the configured timeout; a timeout counts as a failed disbursement.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(config *ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger,
	}
}

type payoutRequest struct {
	RewardID      string  `json:"reward_id"`
	TransactionID string  `json:"transaction_id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
}

// Disburse posts a single payout to the processor. There is no retry
// here; reconciliation of failed payouts is an out-of-process concern.
func (c *Client) Disburse(ctx context.Context, reward models.Reward) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	payload, err := json.Marshal(payoutRequest{
		RewardID:      reward.ID,
		TransactionID: reward.TransactionID,
		UserID:        reward.UserID,
		Amount:        reward.Amount,
	})
	if err != nil {
		return errors.E(errors.Internal, "failed to marshal payout request", err)
	}

	url := fmt.Sprintf("%s/v1/payouts", c.config.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.E(errors.Internal, "failed to build payout request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.E(errors.Internal, "payout request failed", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("payout rejected",
			zap.String("reward_id", reward.ID),
			zap.Int("status_code", resp.StatusCode))
		return errors.E(errors.Internal, fmt.Sprintf("payout rejected with status %d", resp.StatusCode), nil)
	}
	return nil
}
