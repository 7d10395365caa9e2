package main

import (
	"fmt"
	"log"

	"royale_backend/domain"
	"royale_backend/internal/service/config"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate() (err error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return err
	}
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.PlayerStats{},
		&domain.Currency{},
		&domain.PlayerWallet{},
		&domain.ItemDef{},
		&domain.PlayerItem{},
		&domain.PlayerEquipment{},
		&domain.PlayerNpc{},
		&domain.MatchResult{},
	)
	if err != nil {
		return err
	}
	if err = seedCatalog(db); err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

// seedCatalog inserts the read-only currency and item catalogs. Reruns are
// safe: existing keys are left untouched.
func seedCatalog(db *gorm.DB) error {
	if err := db.Exec(`
		INSERT INTO currencies (key, name)
		VALUES ('cash', 'Cash')
		ON CONFLICT (key) DO NOTHING
	`).Error; err != nil {
		return err
	}

	items := []domain.ItemDef{
		{Key: "sword", Category: domain.CategoryWeapon, IsActive: true, Price: 80, Name: "Sword", Description: "A plain blade for close combat."},
		{Key: "bow", Category: domain.CategoryWeapon, IsActive: true, Price: 120, Name: "Bow", Description: "Quiet and deadly at range."},
		{Key: "axe", Category: domain.CategoryWeapon, IsActive: true, Price: 150, Name: "Battle Axe", Description: "Slow swing, heavy hit."},
		{Key: "rusty_pipe", Category: domain.CategoryWeapon, IsActive: false, Price: 10, Name: "Rusty Pipe", Description: "Retired starter weapon."},
	}
	for _, item := range items {
		if err := db.Exec(`
			INSERT INTO item_defs (key, category, is_active, price, name, description)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (key) DO NOTHING
		`, item.Key, item.Category, item.IsActive, item.Price, item.Name, item.Description).Error; err != nil {
			return err
		}
	}
	return nil
}

func main() {
	err := migrate()
	if err != nil {
		log.Fatal(err)
	}
}
