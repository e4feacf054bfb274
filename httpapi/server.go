package httpapi

import (
	// Go Internal Packages
	"context"
	"net/http"

	// Local Packages
	models "reward-stream/models"

	// External Packages
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RewardVerifier is the read-path contract the HTTP boundary depends on.
type RewardVerifier interface {
	Verify(ctx context.Context, apiKey, transactionID string) (models.Reward, error)
	ListForUser(ctx context.Context, userID string) ([]models.Reward, error)
}

type Server struct {
	logger   *zap.Logger
	verifier RewardVerifier
	metrics  http.Handler
}

func NewServer(logger *zap.Logger, verifier RewardVerifier, metrics http.Handler) *Server {
	return &Server{logger: logger, verifier: verifier, metrics: metrics}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Post("/v1/rewards/verify", s.handleVerify)
	r.Get("/v1/users/{id}/rewards", s.handleUserRewards)

	return r
}
