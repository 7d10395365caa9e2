package domain

import "context"

type ProfileResponse struct {
	Player    PlayerResponse          `json:"player"`
	Stats     StatsResponse           `json:"stats"`
	Wallet    WalletResponse          `json:"wallet"`
	Npc       NpcResponse             `json:"npc"`
	Equipment []EquipmentResponse     `json:"equipment"`
	Inventory []InventoryItemResponse `json:"inventory"`
	Store     []StoreItemResponse     `json:"store"`
}

type PlayerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

type StatsResponse struct {
	MatchesPlayed int `json:"matchesPlayed"`
	Wins          int `json:"wins"`
	Kills         int `json:"kills"`
	Deaths        int `json:"deaths"`
}

type WalletResponse struct {
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

type NpcResponse struct {
	Strength   int `json:"strength"`
	Perception int `json:"perception"`
	Agility    int `json:"agility"`
}

type EquipmentResponse struct {
	Slot         string  `json:"slot"`
	PlayerItemID *string `json:"playerItemID"`
}

type InventoryItemResponse struct {
	PlayerItemID string `json:"playerItemID"`
	ItemKey      string `json:"itemKey"`
	Category     string `json:"category"`
	Name         string `json:"name"`
}

type StoreItemResponse struct {
	ItemDefID int    `json:"itemDefID"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, playerID string) (ProfileResponse, error)
	GetStoreCatalog(ctx context.Context) ([]StoreItemResponse, error)
	UpdateUsername(ctx context.Context, playerID string, username string) error
}
