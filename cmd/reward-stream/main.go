package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Local Packages
	config "reward-stream/config"
	httpapi "reward-stream/httpapi"
	kafka "reward-stream/kafka"
	payments "reward-stream/payments"
	mongodb "reward-stream/repositories/mongodb"
	redis "reward-stream/repositories/redis"
	rewards "reward-stream/services/rewards"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// LoadConfig loads the default configuration and overrides it with the config file
// specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	k := LoadConfig()
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Validate the config loaded
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(k.String("logger.level")))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo Connection
	mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI)
	if err != nil {
		logger.Fatal("cannot create mongo client", zap.Error(err))
	}

	// Redis Connection
	redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
	if err != nil {
		logger.Fatal("cannot create redis client", zap.Error(err))
	}

	merchantRepo := mongodb.NewMerchantRepository(mongoClient, appKonf.Mongo.Database)
	userRepo := mongodb.NewUserRepository(mongoClient, appKonf.Mongo.Database)
	txRepo := mongodb.NewTransactionRepository(mongoClient, appKonf.Mongo.Database)
	rewardRepo := mongodb.NewRewardRepository(mongoClient, appKonf.Mongo.Database)
	if err = rewardRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("cannot create reward indexes", zap.Error(err))
	}

	dlQueue := redis.NewDeadLetterQueue(redisClient, logger)
	issuanceLock := redis.NewIssuanceLock(redisClient,
		time.Duration(appKonf.Rewards.DedupTTLSeconds)*time.Second)

	gateway := payments.NewClient(&payments.ClientConfig{
		URL:     appKonf.Gateway.URL,
		APIKey:  appKonf.Gateway.APIKey,
		Timeout: time.Duration(appKonf.Gateway.TimeoutMS) * time.Millisecond,
	}, logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := rewards.NewEngine(rng, &rewards.EngineConfig{
		GrantProbability: appKonf.Rewards.GrantProbability,
	})

	issuer := rewards.NewIssuer(logger, merchantRepo, userRepo, rewardRepo, gateway, engine, issuanceLock)
	verifier := rewards.NewVerifier(logger, merchantRepo, userRepo, txRepo, rewardRepo)
	processor := rewards.NewProcessor(logger, issuer)

	metrics := kprom.NewMetrics("rewardstream")
	server := httpapi.NewServer(logger, verifier, metrics.Handler())

	httpServer := &http.Server{Addr: appKonf.HTTP.Addr, Handler: server.Router()}
	go func() {
		logger.Info("http server listening", zap.String("addr", appKonf.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	conf := &kafka.ConsumerConfig{
		Brokers:        appKonf.Kafka.Brokers,
		Name:           appKonf.Kafka.ConsumerName,
		Topic:          appKonf.Kafka.Topic,
		RecordsPerPoll: appKonf.Kafka.RecordsPerPoll,
	}

	txConsumer, err := kafka.NewTxConsumer(conf, logger, processor, dlQueue, metrics)
	if err != nil {
		logger.Fatal("cannot create transactions consumer", zap.Error(err))
	}

	err = txConsumer.Poll(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("cannot poll records from topic", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
