package usecase

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"
	"royale_backend/internal/service/validation"

	"go.uber.org/zap"
)

type AccountUsecase interface {
	RegisterPlayer(ctx context.Context, username string, password string) (string, error)
	LoginPlayer(ctx context.Context, username string, password string) (string, error)
}

type accountUsecase struct {
	accountRepository domain.AccountRepository
	identityProvider  domain.IdentityProvider
}

func NewAccountUsecase(accountRepository domain.AccountRepository, identityProvider domain.IdentityProvider) AccountUsecase {
	return &accountUsecase{
		accountRepository: accountRepository,
		identityProvider:  identityProvider,
	}
}

// RegisterPlayer creates the external identity, then provisions the local
// account rows. If provisioning fails the identity is deleted again so no
// orphaned identity without game rows survives a half-done signup.
func (uc *accountUsecase) RegisterPlayer(ctx context.Context, username string, password string) (string, error) {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateUsernameLength(username) {
		logger.AccessLogger.Warn("Invalid username length", zap.String("request_id", requestID))
		return "", domain.ErrInvalidUsernameLength
	}
	if !validation.ValidateUsernameFormat(username) {
		logger.AccessLogger.Warn("Invalid username format", zap.String("request_id", requestID))
		return "", domain.ErrInvalidUsernameFormat
	}
	if !validation.ValidatePassword(password) {
		logger.AccessLogger.Warn("Invalid password", zap.String("request_id", requestID))
		return "", domain.ErrInvalidCredentials
	}

	// Advisory pre-check; the unique constraint still backs it up.
	taken, err := uc.accountRepository.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		logger.AccessLogger.Warn("Username already taken", zap.String("request_id", requestID), zap.String("username", username))
		return "", domain.ErrUsernameTaken
	}

	identityID, err := uc.identityProvider.CreateIdentity(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := uc.accountRepository.ProvisionAccount(ctx, identityID, username); err != nil {
		logger.AccessLogger.Error("Provisioning failed, undoing identity",
			zap.String("request_id", requestID),
			zap.String("identity_id", identityID),
			zap.Error(err),
		)
		if delErr := uc.identityProvider.DeleteIdentity(ctx, identityID); delErr != nil {
			logger.AccessLogger.Error("Compensating identity delete failed",
				zap.String("request_id", requestID),
				zap.String("identity_id", identityID),
				zap.Error(delErr),
			)
		}
		return "", err
	}

	logger.AccessLogger.Info("Player registered", zap.String("request_id", requestID), zap.String("player_id", identityID))
	return identityID, nil
}

func (uc *accountUsecase) LoginPlayer(ctx context.Context, username string, password string) (string, error) {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateUsernameLength(username) {
		logger.AccessLogger.Warn("Invalid username length", zap.String("request_id", requestID))
		return "", domain.ErrInvalidUsernameLength
	}

	playerID, err := uc.identityProvider.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := uc.accountRepository.TouchLastLogin(ctx, playerID); err != nil {
		return "", err
	}

	return playerID, nil
}
