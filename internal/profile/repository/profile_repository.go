package repository

import (
	"context"
	"errors"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// inventoryRow is the player_items/item_defs join projection.
type inventoryRow struct {
	ID       string
	ItemKey  string
	Category string
	Name     string
}

// GetProfile assembles the account snapshot. A missing Player row is a normal
// unknown-account case; any other required row missing for an existing player
// violates the provisioning invariant and is reported as a broken account.
func (r *profileRepository) GetProfile(ctx context.Context, playerID string) (domain.ProfileResponse, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetProfile called", zap.String("request_id", requestID), zap.String("player_id", playerID))

	var response domain.ProfileResponse

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var player domain.Player
		if err := tx.Where("id = ?", playerID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.String("player_id", playerID))
				return domain.ErrPlayerNotFound
			}
			logger.DBLogger.Error("Failed to fetch player", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch player")
		}

		var stats domain.PlayerStats
		if err := tx.Where("player_id = ?", playerID).First(&stats).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Stats row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
				return domain.ErrBrokenAccountState
			}
			logger.DBLogger.Error("Failed to fetch stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch stats")
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

		var npc domain.PlayerNpc
		if err := tx.Where("player_id = ?", playerID).First(&npc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Error("Npc row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
				return domain.ErrBrokenAccountState
			}
			logger.DBLogger.Error("Failed to fetch npc", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch npc")
		}

		var equipment []domain.PlayerEquipment
		if err := tx.Where("player_id = ?", playerID).Find(&equipment).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch equipment", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch equipment")
		}
		if len(equipment) < len(domain.EquipmentSlots) {
			logger.DBLogger.Error("Equipment rows missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
			return domain.ErrBrokenAccountState
		}

		var inventory []inventoryRow
		if err := tx.
			Table("player_items").
			Select("player_items.id, item_defs.key AS item_key, item_defs.category, item_defs.name").
			Joins("JOIN item_defs ON item_defs.id = player_items.item_def_id").
			Where("player_items.player_id = ?", playerID).
			Scan(&inventory).Error; err != nil {
			logger.DBLogger.Error("Failed to fetch inventory", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch inventory")
		}

		response = domain.ProfileResponse{
			Player: domain.PlayerResponse{
				ID:       player.ID,
				Username: player.Username,
				Rating:   player.Rating,
			},
			Stats: domain.StatsResponse{
				MatchesPlayed: stats.MatchesPlayed,
				Wins:          stats.Wins,
				Kills:         stats.Kills,
				Deaths:        stats.Deaths,
			},
			Wallet: domain.WalletResponse{
				Currency: currency.Key,
				Balance:  wallet.Balance,
			},
			Npc: domain.NpcResponse{
				Strength:   npc.Strength,
				Perception: npc.Perception,
				Agility:    npc.Agility,
			},
			Equipment: make([]domain.EquipmentResponse, len(equipment)),
			Inventory: make([]domain.InventoryItemResponse, len(inventory)),
			Store:     make([]domain.StoreItemResponse, 0),
		}

		for i, slot := range equipment {
			response.Equipment[i] = domain.EquipmentResponse{
				Slot:         slot.Slot,
				PlayerItemID: slot.PlayerItemID,
			}
		}

		for i, item := range inventory {
			response.Inventory[i] = domain.InventoryItemResponse{
				PlayerItemID: item.ID,
				ItemKey:      item.ItemKey,
				Category:     item.Category,
				Name:         item.Name,
			}
		}

		return nil
	}); err != nil {
		return domain.ProfileResponse{}, err
	}

	logger.DBLogger.Info("Profile assembled", zap.String("request_id", requestID), zap.String("player_id", playerID))
	return response, nil
}

func (r *profileRepository) GetStoreCatalog(ctx context.Context) ([]domain.StoreItemResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	var items []domain.ItemDef
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, domain.CategoryWeapon).
		Order("id").
		Find(&items).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch store catalog", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch store catalog")
	}

	catalog := make([]domain.StoreItemResponse, len(items))
	for i, item := range items {
		catalog[i] = domain.StoreItemResponse{
			ItemDefID: item.ID,
			Key:       item.Key,
			Name:      item.Name,
			Price:     item.Price,
		}
	}
	return catalog, nil
}

func (r *profileRepository) UpdateUsername(ctx context.Context, playerID string, username string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("UpdateUsername called", zap.String("request_id", requestID), zap.String("player_id", playerID))

	// Advisory pre-check; the unique constraint catches the race.
	var existing domain.Player
	err := r.db.WithContext(ctx).Where("username = ? AND id <> ?", username, playerID).First(&existing).Error
	if err == nil {
		logger.DBLogger.Warn("Username already taken", zap.String("request_id", requestID), zap.String("username", username))
		return domain.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.DBLogger.Error("Failed to check username", zap.String("request_id", requestID), zap.Error(err))
		return errors.New("failed to check username")
	}

	res := r.db.WithContext(ctx).Exec(`UPDATE players SET username = ? WHERE id = ?`, username, playerID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			logger.DBLogger.Warn("Username taken in concurrent update", zap.String("request_id", requestID), zap.String("username", username))
			return domain.ErrUsernameTaken
		}
		logger.DBLogger.Error("Failed to update username", zap.String("request_id", requestID), zap.Error(res.Error))
		return errors.New("failed to update username")
	}
	if res.RowsAffected == 0 {
		logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.String("player_id", playerID))
		return domain.ErrPlayerNotFound
	}

	logger.DBLogger.Info("Username updated", zap.String("request_id", requestID), zap.String("player_id", playerID))
	return nil
}
