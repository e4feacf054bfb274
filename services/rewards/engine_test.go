package rewards

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDeniesAboveThreshold(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.2}}
	engine := NewEngine(rng, &EngineConfig{GrantProbability: 0.2})

	granted, percentage := engine.Decide(models.Transaction{Amount: 100})
	assert.False(t, granted)
	assert.Equal(t, 0, percentage)
}

func TestEngineGrantsBelowThreshold(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.19}, ints: []int{6}}
	engine := NewEngine(rng, &EngineConfig{GrantProbability: 0.2})

	granted, percentage := engine.Decide(models.Transaction{Amount: 100})
	require.True(t, granted)
	assert.Equal(t, 7, percentage)
}

func TestEnginePercentageRange(t *testing.T) {
	for draw := 0; draw < 10; draw++ {
		rng := &fixedRand{floats: []float64{0.0}, ints: []int{draw}}
		engine := NewEngine(rng, &EngineConfig{GrantProbability: 0.2})

		granted, percentage := engine.Decide(models.Transaction{Amount: 50})
		require.True(t, granted)
		assert.GreaterOrEqual(t, percentage, 1)
		assert.LessOrEqual(t, percentage, 10)
	}
}

func TestAmount(t *testing.T) {
	tx := models.Transaction{Amount: 250}
	assert.InDelta(t, 12.5, Amount(tx, 5), 1e-9)
	assert.InDelta(t, 25, Amount(tx, 10), 1e-9)
}
