package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/match/usecase"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
)

type MatchHandler struct {
	usecase  usecase.MatchUsecase
	jwtToken middleware.JwtTokenService
}

func NewMatchHandler(usecase usecase.MatchUsecase, jwtToken middleware.JwtTokenService) *MatchHandler {
	return &MatchHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *MatchHandler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received RecordMatchResult request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		h.handleError(w, domain.ErrMissingAuthHeader, requestID)
		return
	}

	tokenString, ok := middleware.BearerToken(authHeader)
	if !ok {
		h.handleError(w, domain.ErrInvalidToken, requestID)
		return
	}

	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		h.handleError(w, domain.ErrInvalidToken, requestID)
		return
	}

	var data domain.MatchResultRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}

	reward, err := h.usecase.RecordMatchResult(ctx, claims.PlayerID, domain.MatchSubmission{
		MatchID:   data.MatchID,
		Kills:     data.Kills,
		Placement: data.Placement,
		Win:       data.Win,
	})
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.MatchResultResponse{Ok: true, RewardCash: reward}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed RecordMatchResult request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *MatchHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "invalid kills value", "invalid placement value",
		"invalid request body", "match already recorded":
		w.WriteHeader(http.StatusBadRequest)
	case "missing authorization header", "invalid or expired token":
		w.WriteHeader(http.StatusUnauthorized)
	case "player not found":
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
