package usecase

import (
	"context"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"
	"royale_backend/internal/service/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchUsecase interface {
	RecordMatchResult(ctx context.Context, playerID string, submission domain.MatchSubmission) (int64, error)
}

type matchUsecase struct {
	matchRepository domain.MatchRepository
}

func NewMatchUsecase(matchRepository domain.MatchRepository) MatchUsecase {
	return &matchUsecase{
		matchRepository: matchRepository,
	}
}

// RecordMatchResult validates the submission, computes the reward and hands
// it to the store. All validation happens before any mutation.
func (uc *matchUsecase) RecordMatchResult(ctx context.Context, playerID string, submission domain.MatchSubmission) (int64, error) {
	requestID := middleware.GetRequestID(ctx)

	if submission.MatchID == "" {
		logger.AccessLogger.Warn("Missing match id", zap.String("request_id", requestID))
		return 0, domain.ErrInvalidBody
	}
	if _, err := uuid.Parse(submission.MatchID); err != nil {
		logger.AccessLogger.Warn("Malformed match id", zap.String("request_id", requestID), zap.String("match_id", submission.MatchID))
		return 0, domain.ErrInvalidBody
	}
	if !validation.ValidateKills(submission.Kills, domain.MaxKillsPerMatch) {
		logger.AccessLogger.Warn("Kills out of bounds", zap.String("request_id", requestID), zap.Int("kills", submission.Kills))
		return 0, domain.ErrInvalidKills
	}
	if !validation.ValidatePlacement(submission.Placement, domain.MaxPlacement) {
		logger.AccessLogger.Warn("Placement out of bounds", zap.String("request_id", requestID), zap.Int("placement", submission.Placement))
		return 0, domain.ErrInvalidPlacement
	}

	reward := domain.MatchReward(submission.Kills, submission.Placement, submission.Win)

	if err := uc.matchRepository.RecordMatchResult(ctx, playerID, submission, reward); err != nil {
		return 0, err
	}
	return reward, nil
}
