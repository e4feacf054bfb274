package config

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) Config {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()))

	var cfg Config
	require.NoError(t, k.Unmarshal("", &cfg))
	return cfg
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := loadDefault(t)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "reward-stream", cfg.Application)
	assert.Equal(t, "transactions", cfg.Kafka.Topic)
	assert.InDelta(t, 0.2, cfg.Rewards.GrantProbability, 1e-9)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cfg := loadDefault(t)
	cfg.Application = ""
	cfg.Gateway.URL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application")
	assert.Contains(t, err.Error(), "gateway.url")
}

func TestValidateRejectsBadProbability(t *testing.T) {
	cfg := loadDefault(t)
	cfg.Rewards.GrantProbability = 1.5

	require.Error(t, cfg.Validate())
}
