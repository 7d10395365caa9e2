package usecase

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
)

type EconomyUsecase interface {
	BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error)
	EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error
}

type economyUsecase struct {
	economyRepository domain.EconomyRepository
}

func NewEconomyUsecase(economyRepository domain.EconomyRepository) EconomyUsecase {
	return &economyUsecase{
		economyRepository: economyRepository,
	}
}

func (uc *economyUsecase) BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error) {
	requestID := middleware.GetRequestID(ctx)

	if itemDefID <= 0 {
		logger.AccessLogger.Warn("Item def id out of range", zap.String("request_id", requestID), zap.Int("item_def_id", itemDefID))
		return "", domain.ErrItemNotFound
	}

	playerItemID, err := uc.economyRepository.BuyItem(ctx, playerID, itemDefID)
	if err != nil {
		return "", err
	}
	return playerItemID, nil
}

func (uc *economyUsecase) EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error {
	requestID := middleware.GetRequestID(ctx)

	if _, ok := domain.EquipmentSlots[slot]; !ok {
		logger.AccessLogger.Warn("Unrecognized slot", zap.String("request_id", requestID), zap.String("slot", slot))
		return domain.ErrInvalidSlot
	}
	if playerItemID == "" {
		logger.AccessLogger.Warn("Empty player item id", zap.String("request_id", requestID))
		return domain.ErrItemNotOwned
	}

	return uc.economyRepository.EquipItem(ctx, playerID, slot, playerItemID)
}
