package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/profile/usecase"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	usecase  usecase.ProfileUsecase
	jwtToken middleware.JwtTokenService
}

func NewProfileHandler(usecase usecase.ProfileUsecase, jwtToken middleware.JwtTokenService) *ProfileHandler {
	return &ProfileHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetProfile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	response, err := h.usecase.GetProfile(ctx, claims.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetProfile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *ProfileHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateUsername request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}

	var data domain.UpdateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, domain.ErrInvalidBody, requestID)
		return
	}
	data.Username = sanitizer.Sanitize(data.Username)

	if err := h.usecase.UpdateUsername(ctx, claims.PlayerID, data.Username); err != nil {
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
	logger.AccessLogger.Info("Completed UpdateUsername request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *ProfileHandler) authorize(w http.ResponseWriter, r *http.Request, requestID string) (*middleware.JwtClaims, bool) {
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

func (h *ProfileHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
