package usecase

import (
	"context"
	"errors"
	"testing"

	"royale_backend/domain"
	"royale_backend/internal/account/mocks"
	"royale_backend/internal/service/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegisterPlayer(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	username := "new_player"
	password := "password123"
	identityID := "identity-uuid"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		mockRepo.On("UsernameExists", ctx, username).Return(false, nil)
		mockProvider.On("CreateIdentity", ctx, username, password).Return(identityID, nil)
		mockRepo.On("ProvisionAccount", ctx, identityID, username).Return(nil)

		playerID, err := uc.RegisterPlayer(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, identityID, playerID)
		mockRepo.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Provisioning Failure Undoes Identity", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		provisionErr := errors.New("failed to create wallet")
		mockRepo.On("UsernameExists", ctx, username).Return(false, nil)
		mockProvider.On("CreateIdentity", ctx, username, password).Return(identityID, nil)
		mockRepo.On("ProvisionAccount", ctx, identityID, username).Return(provisionErr)
		mockProvider.On("DeleteIdentity", ctx, identityID).Return(nil)

		_, err := uc.RegisterPlayer(ctx, username, password)
		assert.Error(t, err)
		assert.Equal(t, provisionErr, err)
		mockProvider.AssertCalled(t, "DeleteIdentity", ctx, identityID)
	})

	t.Run("Username Too Short", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		_, err := uc.RegisterPlayer(ctx, "ab", password)
		assert.Equal(t, domain.ErrInvalidUsernameLength, err)
	})

	t.Run("Username Bad Characters", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		_, err := uc.RegisterPlayer(ctx, "ab$", password)
		assert.Equal(t, domain.ErrInvalidUsernameFormat, err)
	})

	t.Run("Username Taken In Pre-Check", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		mockRepo.On("UsernameExists", ctx, username).Return(true, nil)

		_, err := uc.RegisterPlayer(ctx, username, password)
		assert.Equal(t, domain.ErrUsernameTaken, err)
	})
}

func TestLoginPlayer(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	username := "new_player"
	password := "password123"
	identityID := "identity-uuid"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		mockProvider.On("Authenticate", ctx, username, password).Return(identityID, nil)
		mockRepo.On("TouchLastLogin", ctx, identityID).Return(nil)

		playerID, err := uc.LoginPlayer(ctx, username, password)
		assert.NoError(t, err)
		assert.Equal(t, identityID, playerID)
		mockRepo.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockAccountRepository)
		mockProvider := new(mocks.MockIdentityProvider)
		uc := NewAccountUsecase(mockRepo, mockProvider)

		mockProvider.On("Authenticate", ctx, username, password).Return("", domain.ErrInvalidCredentials)

		_, err := uc.LoginPlayer(ctx, username, password)
		assert.Equal(t, domain.ErrInvalidCredentials, err)
	})
}
