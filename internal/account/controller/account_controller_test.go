package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"royale_backend/domain"
	"royale_backend/internal/account/mocks"
	"royale_backend/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func createTestRequest(method, url string, body []byte) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, url, bytes.NewReader(body))
	w := httptest.NewRecorder()
	return r, w
}

func TestRegisterPlayer(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - Token Issued", func(t *testing.T) {
		mockUsecase := new(mocks.MockAccountUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewAccountHandler(mockUsecase, mockJWT)

		body, _ := json.Marshal(domain.RegisterRequest{Username: "new_player", Password: "password123"})

		mockUsecase.On("RegisterPlayer", mock.Anything, "new_player", "password123").Return("player-uuid", nil)
		mockJWT.On("Create", "player-uuid", mock.Anything).Return("signed-token", nil)

		r, w := createTestRequest(http.MethodPost, "/auth/register", body)
		h.RegisterPlayer(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var tokenResp domain.TokenResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenResp))
		assert.Equal(t, "signed-token", tokenResp.Token)

		mockUsecase.AssertExpectations(t)
		mockJWT.AssertExpectations(t)
	})

	t.Run("Failure - Username Taken", func(t *testing.T) {
		mockUsecase := new(mocks.MockAccountUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewAccountHandler(mockUsecase, mockJWT)

		body, _ := json.Marshal(domain.RegisterRequest{Username: "taken_name", Password: "password123"})

		mockUsecase.On("RegisterPlayer", mock.Anything, "taken_name", "password123").Return("", domain.ErrUsernameTaken)

		r, w := createTestRequest(http.MethodPost, "/auth/register", body)
		h.RegisterPlayer(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		mockUsecase := new(mocks.MockAccountUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewAccountHandler(mockUsecase, mockJWT)

		r, w := createTestRequest(http.MethodPost, "/auth/register", []byte("{not json"))
		h.RegisterPlayer(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginPlayer(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockAccountUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewAccountHandler(mockUsecase, mockJWT)

		body, _ := json.Marshal(domain.LoginRequest{Username: "new_player", Password: "password123"})

		mockUsecase.On("LoginPlayer", mock.Anything, "new_player", "password123").Return("player-uuid", nil)
		mockJWT.On("Create", "player-uuid", mock.Anything).Return("signed-token", nil)

		r, w := createTestRequest(http.MethodPost, "/auth/login", body)
		h.LoginPlayer(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Failure - Invalid Credentials", func(t *testing.T) {
		mockUsecase := new(mocks.MockAccountUsecase)
		mockJWT := new(mocks.MockJwtTokenService)
		h := NewAccountHandler(mockUsecase, mockJWT)

		body, _ := json.Marshal(domain.LoginRequest{Username: "new_player", Password: "wrongpass1"})

		mockUsecase.On("LoginPlayer", mock.Anything, "new_player", "wrongpass1").Return("", domain.ErrInvalidCredentials)

		r, w := createTestRequest(http.MethodPost, "/auth/login", body)
		h.LoginPlayer(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
