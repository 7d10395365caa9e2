package usecase

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/profile/cache"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"
	"royale_backend/internal/service/validation"

	"go.uber.org/zap"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, playerID string) (domain.ProfileResponse, error)
	UpdateUsername(ctx context.Context, playerID string, username string) error
}

type profileUsecase struct {
	profileRepository domain.ProfileRepository
	catalogCache      cache.CatalogCache
}

func NewProfileUsecase(profileRepository domain.ProfileRepository, catalogCache cache.CatalogCache) ProfileUsecase {
	return &profileUsecase{
		profileRepository: profileRepository,
		catalogCache:      catalogCache,
	}
}

// GetProfile merges the account-scoped snapshot with the global store catalog.
func (uc *profileUsecase) GetProfile(ctx context.Context, playerID string) (domain.ProfileResponse, error) {
	response, err := uc.profileRepository.GetProfile(ctx, playerID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	catalog, hit := uc.catalogCache.Get(ctx)
	if !hit {
		catalog, err = uc.profileRepository.GetStoreCatalog(ctx)
		if err != nil {
			return domain.ProfileResponse{}, err
		}
		uc.catalogCache.Set(ctx, catalog)
	}
	response.Store = catalog

	return response, nil
}

func (uc *profileUsecase) UpdateUsername(ctx context.Context, playerID string, username string) error {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateUsernameLength(username) {
		logger.AccessLogger.Warn("Invalid username length", zap.String("request_id", requestID))
		return domain.ErrInvalidUsernameLength
	}
	if !validation.ValidateUsernameFormat(username) {
		logger.AccessLogger.Warn("Invalid username format", zap.String("request_id", requestID))
		return domain.ErrInvalidUsernameFormat
	}

	return uc.profileRepository.UpdateUsername(ctx, playerID, username)
}
