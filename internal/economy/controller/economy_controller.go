package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/economy/usecase"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
)

type EconomyHandler struct {
	usecase  usecase.EconomyUsecase
	jwtToken middleware.JwtTokenService
}

func NewEconomyHandler(usecase usecase.EconomyUsecase, jwtToken middleware.JwtTokenService) *EconomyHandler {
	return &EconomyHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *EconomyHandler) BuyItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received BuyItem request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	var data domain.BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}

	playerItemID, err := h.usecase.BuyItem(ctx, claims.PlayerID, data.ItemDefID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.BuyResponse{Ok: true, PlayerItemID: playerItemID}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed BuyItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *EconomyHandler) EquipItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received EquipItem request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	var data domain.EquipRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}

	if err := h.usecase.EquipItem(ctx, claims.PlayerID, data.Slot, data.PlayerItemID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.OkResponse{Ok: true}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed EquipItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *EconomyHandler) authorize(w http.ResponseWriter, r *http.Request, requestID string) (*middleware.JwtClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		h.handleError(w, domain.ErrMissingAuthHeader, requestID)
		return nil, false
	}

	tokenString, ok := middleware.BearerToken(authHeader)
	if !ok {
		h.handleError(w, domain.ErrInvalidToken, requestID)
		return nil, false
	}

	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil {
		h.handleError(w, domain.ErrInvalidToken, requestID)
		return nil, false
	}
	return claims, true
}

func (h *EconomyHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "item not found", "item is not active", "invalid item price",
		"not enough cash", "invalid slot", "item not owned",
		"invalid item for slot", "invalid request body":
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
