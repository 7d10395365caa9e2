package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/account/usecase"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type AccountHandler struct {
	usecase  usecase.AccountUsecase
	jwtToken middleware.JwtTokenService
}

func NewAccountHandler(usecase usecase.AccountUsecase, jwtToken middleware.JwtTokenService) *AccountHandler {
	return &AccountHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *AccountHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received RegisterPlayer request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}
	creds.Username = sanitizer.Sanitize(creds.Username)

	playerID, err := h.usecase.RegisterPlayer(ctx, creds.Username, creds.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, err := h.issueToken(playerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(domain.TokenResponse{Token: token}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed RegisterPlayer request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AccountHandler) LoginPlayer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received LoginPlayer request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}
	creds.Username = sanitizer.Sanitize(creds.Username)

	playerID, err := h.usecase.LoginPlayer(ctx, creds.Username, creds.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, err := h.issueToken(playerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.TokenResponse{Token: token}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed LoginPlayer request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AccountHandler) issueToken(playerID string) (string, error) {
	tokenExpTime := time.Now().Add(24 * time.Hour).Unix()
	return h.jwtToken.Create(playerID, tokenExpTime)
}

func (h *AccountHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "invalid username length", "invalid username format",
		"username already taken", "invalid request body":
		w.WriteHeader(http.StatusBadRequest)
	case "invalid credentials":
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
