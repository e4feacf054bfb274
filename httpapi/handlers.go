package httpapi

import (
	// Go Internal Packages
	"encoding/json"
	"io"
	"net/http"
	"strings"

	// Local Packages
	errors "reward-stream/errors"

	// External Packages
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type verifyRequest struct {
	TransactionID string `json:"transaction_id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	apiKey := strings.TrimSpace(r.Header.Get("Authorization"))

	var body verifyRequest
	decodeErr := json.NewDecoder(r.Body).Decode(&body)
	// The credential gate stays first: a malformed body is only
	// reported once the caller is past it. An empty body reads as a
	// missing transaction id.
	if decodeErr != nil && decodeErr != io.EOF && apiKey != "" {
		s.writeErr(w, errors.InvalidBodyErr(decodeErr))
		return
	}

	reward, err := s.verifier.Verify(r.Context(), apiKey, strings.TrimSpace(body.TransactionID))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, reward)
}

func (s *Server) handleUserRewards(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	rewards, err := s.verifier.ListForUser(r.Context(), userID)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rewards)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps error kinds to status classes. Unclassified errors
// collapse to a generic 500 so internal detail never leaks.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	kind := errors.KindOf(err)
	status := statusFromKind(kind)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		message = "internal server error"
	}
	s.writeJSON(w, status, errorResponse{Message: message})
}

func statusFromKind(kind errors.Kind) int {
	switch kind {
	case errors.Invalid:
		return http.StatusBadRequest
	case errors.Unauthorized:
		return http.StatusUnauthorized
	case errors.Forbidden:
		return http.StatusForbidden
	case errors.NotFound:
		return http.StatusNotFound
	case errors.Conflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
