package config

import (
	// Local Packages
	errors "reward-stream/errors"
)

var DefaultConfig = []byte(`
application: "reward-stream"

logger:
  level: "debug"

is_prod_mode: false

http:
  addr: ":8080"

mongo:
  uri: "mongodb://localhost:27017"
  database: "rewards"

redis:
  uri: "localhost:6379"
  password: ""

kafka:
  brokers:
    - "localhost:9092"
  topic: "transactions"
  records_per_poll: 500
  consumer_name: "reward-stream"

gateway:
  url: "http://localhost:9090"
  api_key: ""
  timeout_ms: 2000

rewards:
  grant_probability: 0.2
  dedup_ttl_seconds: 60
`)

type Config struct {
	Application string  `koanf:"application"`
	Logger      Logger  `koanf:"logger"`
	IsProdMode  bool    `koanf:"is_prod_mode"`
	HTTP        HTTP    `koanf:"http"`
	Mongo       Mongo   `koanf:"mongo"`
	Redis       Redis   `koanf:"redis"`
	Kafka       Kafka   `koanf:"kafka"`
	Gateway     Gateway `koanf:"gateway"`
	Rewards     Rewards `koanf:"rewards"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type HTTP struct {
	Addr string `koanf:"addr"`
}

type Mongo struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
}

type Kafka struct {
	Brokers        []string `koanf:"brokers"`
	Topic          string   `koanf:"topic"`
	RecordsPerPoll int      `koanf:"records_per_poll"`
	ConsumerName   string   `koanf:"consumer_name"`
}

type Gateway struct {
	URL       string `koanf:"url"`
	APIKey    string `koanf:"api_key"`
	TimeoutMS int    `koanf:"timeout_ms"`
}

type Rewards struct {
	GrantProbability float64 `koanf:"grant_probability"`
	DedupTTLSeconds  int     `koanf:"dedup_ttl_seconds"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.HTTP.Addr == "" {
		ve.Add("http.addr", "cannot be empty")
	}
	if c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Mongo.Database == "" {
		ve.Add("mongo.database", "cannot be empty")
	}
	if c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Kafka.Topic == "" {
		ve.Add("kafka.topic", "cannot be empty")
	}
	if c.Gateway.URL == "" {
		ve.Add("gateway.url", "cannot be empty")
	}
	if c.Gateway.TimeoutMS <= 0 {
		ve.Add("gateway.timeout_ms", "must be positive")
	}
	if c.Rewards.GrantProbability < 0 || c.Rewards.GrantProbability > 1 {
		ve.Add("rewards.grant_probability", "must be within [0, 1]")
	}

	return ve.Err()
}
