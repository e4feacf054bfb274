package models

import (
	// Go Internal Packages
	"time"
)

// RewardStatus is the lifecycle state of a reward. A reward starts as
// pending and always ends in exactly one of the terminal states.
type RewardStatus string

const (
	RewardPending RewardStatus = "pending"
	RewardIssued  RewardStatus = "issued"
	RewardFailed  RewardStatus = "failed"
)

// Terminal reports whether no further status transition is allowed.
func (s RewardStatus) Terminal() bool {
	return s == RewardIssued || s == RewardFailed
}

// TxProcessed is the transaction state required before a reward can be
// evaluated or verified. The checkout system owns the full vocabulary.
const TxProcessed = "processed"

type Merchant struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	APIKey   string `json:"api_key" bson:"api_key"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type User struct {
	ID       string `json:"id" bson:"_id"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type Transaction struct {
	ID         string  `json:"transaction_id" bson:"_id"`
	MerchantID string  `json:"merchant_id" bson:"merchant_id"`
	UserID     string  `json:"user_id" bson:"user_id"`
	Amount     float64 `json:"amount" bson:"amount"`
	Status     string  `json:"status" bson:"status"`
	Timestamp  string  `json:"timestamp" bson:"timestamp"`
}

// Processed reports whether the checkout system has settled the
// transaction.
func (t Transaction) Processed() bool {
	return t.Status == TxProcessed
}

type Reward struct {
	ID            string       `json:"id"`
	TransactionID string       `json:"transaction_id"`
	UserID        string       `json:"user_id"`
	MerchantID    string       `json:"merchant_id"`
	Amount        float64      `json:"amount"`
	Percentage    int          `json:"percentage"`
	Status        RewardStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// MongoReward is the persisted shape, keyed by transaction id so the
// one-reward-per-transaction invariant holds at the storage layer.
type MongoReward struct {
	TransactionID string       `json:"transaction_id" bson:"_id"`
	RewardID      string       `json:"id" bson:"reward_id"`
	UserID        string       `json:"user_id" bson:"user_id"`
	MerchantID    string       `json:"merchant_id" bson:"merchant_id"`
	Amount        float64      `json:"amount" bson:"amount"`
	Percentage    int          `json:"percentage" bson:"percentage"`
	Status        RewardStatus `json:"status" bson:"status"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
}

func (r Reward) Transform() MongoReward {
	return MongoReward{
		TransactionID: r.TransactionID,
		RewardID:      r.ID,
		UserID:        r.UserID,
		MerchantID:    r.MerchantID,
		Amount:        r.Amount,
		Percentage:    r.Percentage,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func (m MongoReward) Reward() Reward {
	return Reward{
		ID:            m.RewardID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		MerchantID:    m.MerchantID,
		Amount:        m.Amount,
		Percentage:    m.Percentage,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}
