package repository

import (
	"context"
	"errors"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type economyRepository struct {
	db *gorm.DB
}

func NewEconomyRepository(db *gorm.DB) domain.EconomyRepository {
	return &economyRepository{
		db: db,
	}
}

// BuyItem validates the purchase and applies debit-and-grant in one
// transaction. The debit is conditioned on the balance at commit time, so two
// concurrent purchases cannot both pass the affordability check against a
// stale balance.
func (r *economyRepository) BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("BuyItem called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.Int("item_def_id", itemDefID))

	var playerItemID string

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item domain.ItemDef
		if err := tx.Where("id = ?", itemDefID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Item not found", zap.String("request_id", requestID), zap.Int("item_def_id", itemDefID))
				return domain.ErrItemNotFound
			}
			logger.DBLogger.Error("Failed to fetch item def", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch item def")
		}

		if !item.IsActive {
			logger.DBLogger.Warn("Item is not active", zap.String("request_id", requestID), zap.Int("item_def_id", itemDefID))
			return domain.ErrItemInactive
		}

		if item.Price < 0 {
			logger.DBLogger.Warn("Item has invalid price", zap.String("request_id", requestID), zap.Int("item_def_id", itemDefID), zap.Int64("price", item.Price))
			return domain.ErrInvalidPrice
		}

		var player domain.Player
		if err := tx.Where("id = ?", playerID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.String("player_id", playerID))
				return domain.ErrPlayerNotFound
			}
			logger.DBLogger.Error("Failed to fetch player", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch player")
		}

		var currency domain.Currency
		if err := tx.Where("key = ?", domain.CurrencyCash).First(&currency).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Cash currency missing from catalog", zap.String("request_id", requestID))
				return domain.ErrCurrencyMissing
			}
			logger.DBLogger.Error("Failed to fetch currency", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch currency")
		}

		var wallet domain.PlayerWallet
		if err := tx.Where("player_id = ? AND currency_id = ?", playerID, currency.ID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Wallet row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
				return domain.ErrBrokenAccountState
			}
			logger.DBLogger.Error("Failed to fetch wallet", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch wallet")
		}

		if wallet.Balance < item.Price {
			logger.DBLogger.Warn("Not enough cash", zap.String("request_id", requestID), zap.String("player_id", playerID))
			return domain.ErrNotEnoughCash
		}

		res := tx.Exec(`UPDATE player_wallets SET balance = balance - ? WHERE id = ? AND balance >= ?`,
			item.Price, wallet.ID, item.Price)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to debit wallet", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to debit wallet")
		}
		if res.RowsAffected == 0 {
			// Balance was reduced by a concurrent purchase after our read.
			logger.DBLogger.Warn("Not enough cash at debit time", zap.String("request_id", requestID), zap.String("player_id", playerID))
			return domain.ErrNotEnoughCash
		}

		if err := tx.Raw(`INSERT INTO player_items (player_id, item_def_id, acquired_at) VALUES (?, ?, ?) RETURNING id`,
			playerID, itemDefID, time.Now()).Scan(&playerItemID).Error; err != nil {
			logger.DBLogger.Error("Failed to grant item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to grant item")
		}

		return nil
	}); err != nil {
		return "", err
	}

	logger.DBLogger.Info("Item purchased", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("player_item_id", playerItemID))
	return playerItemID, nil
}

// ownedItem is the ownership/category projection used by EquipItem.
type ownedItem struct {
	ID       string
	PlayerID string
	Category string
}

func (r *economyRepository) EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("EquipItem called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("slot", slot), zap.String("player_item_id", playerItemID))

	category, ok := domain.EquipmentSlots[slot]
	if !ok {
		return domain.ErrInvalidSlot
	}

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item ownedItem
		if err := tx.
			Table("player_items").
			Select("player_items.id, player_items.player_id, item_defs.category").
			Joins("JOIN item_defs ON item_defs.id = player_items.item_def_id").
			Where("player_items.id = ?", playerItemID).
			Scan(&item).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch player item", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch player item")
		}

		if item.ID == "" || item.PlayerID != playerID {
			logger.DBLogger.Warn("Item not owned by player", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("player_item_id", playerItemID))
			return domain.ErrItemNotOwned
		}

		if item.Category != category {
			logger.DBLogger.Warn("Item category does not fit slot", zap.String("request_id", requestID), zap.String("slot", slot), zap.String("category", item.Category))
			return domain.ErrInvalidItem
		}

		res := tx.Exec(`UPDATE player_equipments SET player_item_id = ? WHERE player_id = ? AND slot = ?`,
			playerItemID, playerID, slot)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to update equipment", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to update equipment")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Error("Equipment row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("slot", slot))
			return domain.ErrBrokenAccountState
		}

		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Item equipped", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("slot", slot))
	return nil
}
