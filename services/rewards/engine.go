package rewards

import (
	// Local Packages
	models "reward-stream/models"
)

// RandSource is the randomness consumed by the decision engine.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

type EngineConfig struct {
	GrantProbability float64
}

// Engine decides whether a settled transaction earns a cash-back
// reward and at what percentage. It touches no external state.
type Engine struct {
	rand   RandSource
	config *EngineConfig
}

func NewEngine(rand RandSource, config *EngineConfig) *Engine {
	return &Engine{rand: rand, config: config}
}

// Decide draws eligibility with the configured probability. When it
// grants, the percentage is uniform over [1, 10].
func (e *Engine) Decide(tx models.Transaction) (granted bool, percentage int) {
	if e.rand.Float64() >= e.config.GrantProbability {
		return false, 0
	}
	return true, e.rand.Intn(10) + 1
}

// Amount computes the reward value for a percentage of the transaction.
func Amount(tx models.Transaction, percentage int) float64 {
	return tx.Amount * float64(percentage) / 100
}
