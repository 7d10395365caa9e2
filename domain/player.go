package domain

import (
	"context"
	"time"
)

type Player struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Username    string    `gorm:"type:varchar(20);unique;not null;column:username" json:"username"`
	Rating      int       `gorm:"type:int;default:0;column:rating" json:"rating"`
	LastLoginAt time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
}

type PlayerStats struct {
	PlayerID      string `gorm:"type:uuid;primaryKey;column:player_id" json:"playerID"`
	MatchesPlayed int    `gorm:"type:int;not null;column:matches_played" json:"matchesPlayed"`
	Wins          int    `gorm:"type:int;not null;column:wins" json:"wins"`
	Kills         int    `gorm:"type:int;not null;column:kills" json:"kills"`
	Deaths        int    `gorm:"type:int;not null;column:deaths" json:"deaths"`
	Player        Player `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
}

type PlayerNpc struct {
	PlayerID   string `gorm:"type:uuid;primaryKey;column:player_id" json:"playerID"`
	Strength   int    `gorm:"type:int;not null;column:strength" json:"strength"`
	Perception int    `gorm:"type:int;not null;column:perception" json:"perception"`
	Agility    int    `gorm:"type:int;not null;column:agility" json:"agility"`
	Player     Player `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
}

// Default base attributes every freshly provisioned npc starts with.
const (
	DefaultNpcStrength   = 1
	DefaultNpcPerception = 1
	DefaultNpcAgility    = 1
)

type AccountRepository interface {
	ProvisionAccount(ctx context.Context, playerID string, username string) error
	TouchLastLogin(ctx context.Context, playerID string) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}
