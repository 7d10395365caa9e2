package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// ProvisionAccount creates the full row-set a player account consists of.
// All inserts happen in one transaction; a failure at any step leaves no rows.
func (r *accountRepository) ProvisionAccount(ctx context.Context, playerID string, username string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ProvisionAccount called", zap.String("request_id", requestID), zap.String("player_id", playerID), zap.String("username", username))

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`INSERT INTO players (id, username, rating, last_login_at) VALUES (?, ?, 0, ?)`,
			playerID, username, time.Now()).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.DBLogger.Warn("Username already taken", zap.String("request_id", requestID), zap.String("username", username))
				return domain.ErrUsernameTaken
			}
			logger.DBLogger.Error("Failed to create player", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create player")
		}

		if err := tx.Exec(`INSERT INTO player_stats (player_id, matches_played, wins, kills, deaths) VALUES (?, 0, 0, 0, 0)`,
			playerID).Error; err != nil {
			logger.DBLogger.Error("Failed to create player stats", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create player stats")
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

		if err := tx.Exec(`INSERT INTO player_wallets (player_id, currency_id, balance) VALUES (?, ?, 0)`,
			playerID, currency.ID).Error; err != nil {
			logger.DBLogger.Error("Failed to create wallet", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create wallet")
		}

		if err := tx.Exec(`INSERT INTO player_npcs (player_id, strength, perception, agility) VALUES (?, ?, ?, ?)`,
			playerID, domain.DefaultNpcStrength, domain.DefaultNpcPerception, domain.DefaultNpcAgility).Error; err != nil {
			logger.DBLogger.Error("Failed to create npc", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create npc")
		}

		slots := make([]string, 0, len(domain.EquipmentSlots))
		for slot := range domain.EquipmentSlots {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			if err := tx.Exec(`INSERT INTO player_equipments (player_id, slot, player_item_id) VALUES (?, ?, NULL)`,
				playerID, slot).Error; err != nil {
				logger.DBLogger.Error("Failed to create equipment slot", zap.String("request_id", requestID), zap.String("slot", slot), zap.Error(err))
				return errors.New("failed to create equipment slot")
			}
		}

		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Account provisioned", zap.String("request_id", requestID), zap.String("player_id", playerID))
	return nil
}

func (r *accountRepository) TouchLastLogin(ctx context.Context, playerID string) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("TouchLastLogin called", zap.String("request_id", requestID), zap.String("player_id", playerID))

	res := r.db.WithContext(ctx).Exec(`UPDATE players SET last_login_at = ? WHERE id = ?`, time.Now(), playerID)
	if res.Error != nil {
		logger.DBLogger.Error("Failed to update last login", zap.String("request_id", requestID), zap.Error(res.Error))
		return errors.New("failed to update last login")
	}
	if res.RowsAffected == 0 {
		logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.String("player_id", playerID))
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	requestID := middleware.GetRequestID(ctx)

	var player domain.Player
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		logger.DBLogger.Error("Failed to check username", zap.String("request_id", requestID), zap.Error(err))
		return false, errors.New("failed to check username")
	}
	return true, nil
}
