package models

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestRewardStatusTerminal(t *testing.T) {
	assert.False(t, RewardPending.Terminal())
	assert.True(t, RewardIssued.Terminal())
	assert.True(t, RewardFailed.Terminal())
}
