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

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) domain.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// RecordMatchResult stores the submission, bumps the aggregate stats and
// credits the reward in one transaction. The unique (player, match) index is
// what makes resubmission of the same match a no-op instead of a double count.
func (r *matchRepository) RecordMatchResult(ctx context.Context, playerID string, submission domain.MatchSubmission, reward int64) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("RecordMatchResult called",
		zap.String("request_id", requestID),
		zap.String("player_id", playerID),
		zap.String("match_id", submission.MatchID),
		zap.Int("kills", submission.Kills),
		zap.Bool("win", submission.Win),
	)

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

		if err := tx.Exec(`INSERT INTO match_results (player_id, match_id, kills, placement, win, reward_cash, recorded_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			playerID, submission.MatchID, submission.Kills, submission.Placement, submission.Win, reward, time.Now()).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.DBLogger.Warn("Match already recorded", zap.String("request_id", requestID), zap.String("match_id", submission.MatchID))
				return domain.ErrMatchAlreadyRecorded
			}
			logger.DBLogger.Error("Failed to record match result", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to record match result")
		}

		wins := 0
		if submission.Win {
			wins = 1
		}
		res := tx.Exec(`UPDATE player_stats SET matches_played = matches_played + 1, kills = kills + ?, wins = wins + ? WHERE player_id = ?`,
			submission.Kills, wins, playerID)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to update stats", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to update stats")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Error("Stats row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
			return domain.ErrBrokenAccountState
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

		res = tx.Exec(`UPDATE player_wallets SET balance = balance + ? WHERE player_id = ? AND currency_id = ?`,
			reward, playerID, currency.ID)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to credit reward", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to credit reward")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Error("Wallet row missing for existing player", zap.String("request_id", requestID), zap.String("player_id", playerID))
			return domain.ErrBrokenAccountState
		}

		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Match result recorded",
		zap.String("request_id", requestID),
		zap.String("player_id", playerID),
		zap.String("match_id", submission.MatchID),
		zap.Int64("reward_cash", reward),
	)
	return nil
}
