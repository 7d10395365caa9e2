package domain

import (
	"context"
	"time"
)

// CurrencyCash is the wallet denomination every account is provisioned with.
const CurrencyCash = "cash"

const CategoryWeapon = "weapon"

// EquipmentSlots maps each recognized slot to the item category it accepts.
var EquipmentSlots = map[string]string{
	"weapon_primary": CategoryWeapon,
}

type Currency struct {
	ID   int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Key  string `gorm:"type:varchar(50);unique;not null;column:key" json:"key"`
	Name string `gorm:"type:varchar(255);not null;column:name" json:"name"`
}

type PlayerWallet struct {
	ID         int      `gorm:"primary_key;auto_increment;column:id" json:"id"`
	PlayerID   string   `gorm:"type:uuid;column:player_id;not null;index:idx_player_currency,unique" json:"playerID"`
	CurrencyID int      `gorm:"column:currency_id;not null;index:idx_player_currency,unique" json:"currencyID"`
	Balance    int64    `gorm:"type:bigint;not null;check:balance >= 0;column:balance" json:"balance"`
	Player     Player   `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
	Currency   Currency `gorm:"foreignkey:CurrencyID;references:ID" json:"-"`
}

type ItemDef struct {
	ID          int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Key         string `gorm:"type:varchar(50);unique;not null;column:key" json:"key"`
	Category    string `gorm:"type:varchar(50);not null;column:category" json:"category"`
	IsActive    bool   `gorm:"column:is_active;not null" json:"isActive"`
	Price       int64  `gorm:"type:bigint;not null;column:price" json:"price"`
	Name        string `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description"`
}

type PlayerItem struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid();column:id" json:"id"`
	PlayerID   string    `gorm:"type:uuid;column:player_id;not null" json:"playerID"`
	ItemDefID  int       `gorm:"column:item_def_id;not null" json:"itemDefID"`
	AcquiredAt time.Time `gorm:"column:acquired_at" json:"acquiredAt"`
	Player     Player    `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
	ItemDef    ItemDef   `gorm:"foreignkey:ItemDefID;references:ID" json:"-"`
}

type PlayerEquipment struct {
	ID           int     `gorm:"primary_key;auto_increment;column:id" json:"id"`
	PlayerID     string  `gorm:"type:uuid;column:player_id;not null;index:idx_player_slot,unique" json:"playerID"`
	Slot         string  `gorm:"type:varchar(50);column:slot;not null;index:idx_player_slot,unique" json:"slot"`
	PlayerItemID *string `gorm:"type:uuid;column:player_item_id;unique" json:"playerItemID"`
	Player       Player  `gorm:"foreignkey:PlayerID;references:ID" json:"-"`
}

type BuyRequest struct {
	ItemDefID int `json:"item_def_id"`
}

type BuyResponse struct {
	Ok           bool   `json:"ok"`
	PlayerItemID string `json:"player_item_id"`
}

type EquipRequest struct {
	Slot         string `json:"slot"`
	PlayerItemID string `json:"player_item_id"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type EconomyRepository interface {
	BuyItem(ctx context.Context, playerID string, itemDefID int) (string, error)
	EquipItem(ctx context.Context, playerID string, slot string, playerItemID string) error
}
