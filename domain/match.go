package domain

import (
	"context"
	"time"
)

// Submission bounds for a single match result.
const (
	MaxKillsPerMatch = 100
	MaxPlacement     = 100
)

// Reward credit constants, applied per match result.
const (
	RewardPerKill   = 10
	RewardWin       = 100
	RewardTopTen    = 25
	TopTenPlacement = 10
)

type MatchResult struct {
	ID         int       `gorm:"primary_key;auto_increment;column:id" json:"id"`
	PlayerID   string    `gorm:"type:uuid;column:player_id;not null;index:idx_player_match,unique" json:"playerID"`
	MatchID    string    `gorm:"type:uuid;column:match_id;not null;index:idx_player_match,unique" json:"matchID"`
	Kills      int       `gorm:"type:int;not null;column:kills" json:"kills"`
	Placement  int       `gorm:"type:int;not null;column:placement" json:"placement"`
	Win        bool      `gorm:"column:win;not null" json:"win"`
	RewardCash int64     `gorm:"type:bigint;not null;column:reward_cash" json:"rewardCash"`
	RecordedAt time.Time `gorm:"column:recorded_at" json:"recordedAt"`
	Player     Player    `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
}

type MatchResultRequest struct {
	MatchID   string `json:"match_id"`
	Kills     int    `json:"kills"`
	Placement int    `json:"placement"`
	Win       bool   `json:"win"`
}

type MatchResultResponse struct {
	Ok         bool  `json:"ok"`
	RewardCash int64 `json:"reward_cash"`
}

type MatchSubmission struct {
	MatchID   string
	Kills     int
	Placement int
	Win       bool
}

// MatchReward computes the cash credit for one match result. A win pays the
// full win bonus; a top-ten finish without a win pays the smaller bonus.
func MatchReward(kills int, placement int, win bool) int64 {
	reward := int64(kills) * RewardPerKill
	if win {
		return reward + RewardWin
	}
	if placement >= 1 && placement <= TopTenPlacement {
		reward += RewardTopTen
	}
	return reward
}

type MatchRepository interface {
	RecordMatchResult(ctx context.Context, playerID string, submission MatchSubmission, reward int64) error
}
