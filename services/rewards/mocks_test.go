package rewards

import (
	// Go Internal Packages
	"context"
	"sync"

	// Local Packages
	errors "reward-stream/errors"
	models "reward-stream/models"
)

// fixedRand replays a scripted sequence of draws.
type fixedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *fixedRand) Intn(n int) int {
	v := r.ints[r.ii]
	r.ii++
	return v % n
}

type mockMerchants struct {
	byID     map[string]models.Merchant
	byAPIKey map[string]models.Merchant
	err      error
}

func (m *mockMerchants) FindByID(_ context.Context, id string) (models.Merchant, error) {
	if m.err != nil {
		return models.Merchant{}, m.err
	}
	merchant, ok := m.byID[id]
	if !ok {
		return models.Merchant{}, errors.E(errors.NotFound, "merchant does not exist", nil)
	}
	return merchant, nil
}

func (m *mockMerchants) FindByAPIKey(_ context.Context, apiKey string) (models.Merchant, error) {
	if m.err != nil {
		return models.Merchant{}, m.err
	}
	merchant, ok := m.byAPIKey[apiKey]
	if !ok {
		return models.Merchant{}, errors.E(errors.NotFound, "merchant does not exist", nil)
	}
	return merchant, nil
}

type mockUsers struct {
	byID map[string]models.User
	err  error
}

func (m *mockUsers) FindByID(_ context.Context, id string) (models.User, error) {
	if m.err != nil {
		return models.User{}, m.err
	}
	user, ok := m.byID[id]
	if !ok {
		return models.User{}, errors.E(errors.NotFound, "user does not exist", nil)
	}
	return user, nil
}

type mockTransactions struct {
	byID map[string]models.Transaction
}

func (m *mockTransactions) FindByID(_ context.Context, id string) (models.Transaction, error) {
	tx, ok := m.byID[id]
	if !ok {
		return models.Transaction{}, errors.TransactionNotFoundErr(id)
	}
	return tx, nil
}

type mockRewards struct {
	mu      sync.Mutex
	byTxID  map[string]models.Reward
	saveErr error
	saves   int
}

func newMockRewards() *mockRewards {
	return &mockRewards{byTxID: make(map[string]models.Reward)}
}

func (m *mockRewards) Save(_ context.Context, reward models.Reward) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.byTxID[reward.TransactionID] = reward
	return nil
}

func (m *mockRewards) FindByTransactionID(_ context.Context, transactionID string) (models.Reward, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reward, ok := m.byTxID[transactionID]
	if !ok {
		return models.Reward{}, errors.RewardNotFoundErr(transactionID)
	}
	return reward, nil
}

func (m *mockRewards) ListByUserID(_ context.Context, userID string) ([]models.Reward, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rewards := make([]models.Reward, 0)
	for _, reward := range m.byTxID {
		if reward.UserID == userID {
			rewards = append(rewards, reward)
		}
	}
	return rewards, nil
}

type mockGateway struct {
	mu    sync.Mutex
	err   error
	calls int
	last  models.Reward
}

func (m *mockGateway) Disburse(_ context.Context, reward models.Reward) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = reward
	return m.err
}

type mockLock struct {
	mu       sync.Mutex
	held     bool
	err      error
	acquires int
	releases int
}

func (m *mockLock) Acquire(_ context.Context, _ string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acquires++
	if m.err != nil {
		return false, m.err
	}
	return !m.held, nil
}

func (m *mockLock) Release(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releases++
	return nil
}
