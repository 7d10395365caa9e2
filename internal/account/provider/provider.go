package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
)

// identityClient is a thin HTTP client for the external identity provider.
// Credentials never touch local storage; the provider issues the subject id
// used as the player id everywhere else.
type identityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(baseURL string) domain.IdentityProvider {
	return &identityClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identityResponse struct {
	ID string `json:"id"`
}

func (c *identityClient) CreateIdentity(ctx context.Context, username string, password string) (string, error) {
	return c.postCredentials(ctx, "/identities", username, password)
}

func (c *identityClient) Authenticate(ctx context.Context, username string, password string) (string, error) {
	return c.postCredentials(ctx, "/sessions", username, password)
}

func (c *identityClient) DeleteIdentity(ctx context.Context, identityID string) error {
	requestID := middleware.GetRequestID(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/identities/"+identityID, nil)
	if err != nil {
		return fmt.Errorf("build identity delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.AccessLogger.Error("Identity provider unreachable", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("identity provider unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		logger.AccessLogger.Error("Identity delete rejected", zap.String("request_id", requestID), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("identity delete failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *identityClient) postCredentials(ctx context.Context, path string, username string, password string) (string, error) {
	requestID := middleware.GetRequestID(ctx)

	body, err := json.Marshal(credentialsPayload{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.AccessLogger.Error("Identity provider unreachable", zap.String("request_id", requestID), zap.Error(err))
		return "", errors.New("identity provider unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", domain.ErrInvalidCredentials
	case resp.StatusCode == http.StatusConflict:
		return "", domain.ErrUsernameTaken
	default:
		logger.AccessLogger.Error("Identity request rejected", zap.String("request_id", requestID), zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("identity request failed with status %d", resp.StatusCode)
	}

	var identity identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return "", fmt.Errorf("decode identity response: %w", err)
	}
	if identity.ID == "" {
		return "", errors.New("identity provider returned empty id")
	}
	return identity.ID, nil
}
