package repository

import (
	"context"
	"regexp"
	"testing"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (domain.EconomyRepository, sqlmock.Sqlmock, func()) {
	logger.DBLogger = zap.NewNop()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewEconomyRepository(gormDB), mock, func() { db.Close() }
}

func expectItemDef(mock sqlmock.Sqlmock, itemDefID int, active bool, price int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "item_defs" WHERE id = $1 ORDER BY "item_defs"."id" LIMIT $2`)).
		WithArgs(itemDefID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "category", "is_active", "price", "name"}).
			AddRow(itemDefID, "sword", "weapon", active, price, "Sword"))
}

func expectPlayer(mock sqlmock.Sqlmock, playerID string) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "players" WHERE id = $1 ORDER BY "players"."id" LIMIT $2`)).
		WithArgs(playerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "rating"}).AddRow(playerID, "new_player", 0))
}

func expectCashCurrency(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "currencies" WHERE key = $1 ORDER BY "currencies"."id" LIMIT $2`)).
		WithArgs(domain.CurrencyCash, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "name"}).AddRow(1, "cash", "Cash"))
}

func expectWallet(mock sqlmock.Sqlmock, playerID string, walletID int, balance int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "player_wallets" WHERE player_id = $1 AND currency_id = $2 ORDER BY "player_wallets"."id" LIMIT $3`)).
		WithArgs(playerID, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "currency_id", "balance"}).
			AddRow(walletID, playerID, 1, balance))
}

func TestBuyItem(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	ctx := context.Background()
	playerID := "player-uuid"
	itemDefID := 7

	t.Run("Success - Affordable Purchase", func(t *testing.T) {
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, true, 80)
		expectPlayer(mock, playerID)
		expectCashCurrency(mock)
		expectWallet(mock, playerID, 3, 100)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_wallets SET balance = balance - $1 WHERE id = $2 AND balance >= $3`)).
			WithArgs(int64(80), 3, int64(80)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO player_items (player_id, item_def_id, acquired_at) VALUES ($1, $2, $3) RETURNING id`)).
			WithArgs(playerID, itemDefID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("item-instance-uuid"))

		mock.ExpectCommit()

		playerItemID, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.NoError(t, err)
		assert.Equal(t, "item-instance-uuid", playerItemID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Item Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "item_defs" WHERE id = $1 ORDER BY "item_defs"."id" LIMIT $2`)).
			WithArgs(itemDefID, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrItemNotFound, err)
	})

	t.Run("Fail - Item Inactive", func(t *testing.T) {
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, false, 80)
		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrItemInactive, err)
	})

	t.Run("Fail - Negative Price", func(t *testing.T) {
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, true, -1)
		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrInvalidPrice, err)
	})

	t.Run("Fail - Not Enough Cash Leaves Balance Untouched", func(t *testing.T) {
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, true, 80)
		expectPlayer(mock, playerID)
		expectCashCurrency(mock)
		expectWallet(mock, playerID, 3, 10)
		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrNotEnoughCash, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Concurrent Debit Beats Us", func(t *testing.T) {
		// Balance check passed against a stale read; the conditional update
		// then matches no row, which must read as not-enough-cash.
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, true, 80)
		expectPlayer(mock, playerID)
		expectCashCurrency(mock)
		expectWallet(mock, playerID, 3, 100)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_wallets SET balance = balance - $1 WHERE id = $2 AND balance >= $3`)).
			WithArgs(int64(80), 3, int64(80)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrNotEnoughCash, err)
	})

	t.Run("Fail - Wallet Row Missing", func(t *testing.T) {
		mock.ExpectBegin()
		expectItemDef(mock, itemDefID, true, 80)
		expectPlayer(mock, playerID)
		expectCashCurrency(mock)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "player_wallets" WHERE player_id = $1 AND currency_id = $2 ORDER BY "player_wallets"."id" LIMIT $3`)).
			WithArgs(playerID, 1, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		_, err := repo.BuyItem(ctx, playerID, itemDefID)
		assert.Equal(t, domain.ErrBrokenAccountState, err)
	})
}

func TestEquipItem(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	ctx := context.Background()
	playerID := "player-uuid"
	playerItemID := "item-instance-uuid"

	ownershipQuery := regexp.QuoteMeta(`SELECT player_items.id, player_items.player_id, item_defs.category FROM "player_items" JOIN item_defs ON item_defs.id = player_items.item_def_id WHERE player_items.id = $1`)

	t.Run("Success - Item Equipped", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(playerItemID, playerID, "weapon"))

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_equipments SET player_item_id = $1 WHERE player_id = $2 AND slot = $3`)).
			WithArgs(playerItemID, playerID, "weapon_primary").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Re-Equip Replaces Occupied Slot", func(t *testing.T) {
		secondItemID := "second-instance-uuid"

		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(playerItemID, playerID, "weapon"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_equipments SET player_item_id = $1 WHERE player_id = $2 AND slot = $3`)).
			WithArgs(playerItemID, playerID, "weapon_primary").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID))

		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(secondItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(secondItemID, playerID, "weapon"))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_equipments SET player_item_id = $1 WHERE player_id = $2 AND slot = $3`)).
			WithArgs(secondItemID, playerID, "weapon_primary").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", secondItemID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Item Owned By Someone Else", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(playerItemID, "other-player-uuid", "weapon"))
		mock.ExpectRollback()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID)
		assert.Equal(t, domain.ErrItemNotOwned, err)
	})

	t.Run("Fail - Item Does Not Exist", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}))
		mock.ExpectRollback()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID)
		assert.Equal(t, domain.ErrItemNotOwned, err)
	})

	t.Run("Fail - Category Does Not Fit Slot", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(playerItemID, playerID, "hat"))
		mock.ExpectRollback()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID)
		assert.Equal(t, domain.ErrInvalidItem, err)
	})

	t.Run("Fail - Unrecognized Slot", func(t *testing.T) {
		err := repo.EquipItem(ctx, playerID, "weapon_offhand", playerItemID)
		assert.Equal(t, domain.ErrInvalidSlot, err)
	})

	t.Run("Fail - Equipment Row Missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(ownershipQuery).
			WithArgs(playerItemID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "player_id", "category"}).
				AddRow(playerItemID, playerID, "weapon"))

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE player_equipments SET player_item_id = $1 WHERE player_id = $2 AND slot = $3`)).
			WithArgs(playerItemID, playerID, "weapon_primary").
			WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectRollback()

		err := repo.EquipItem(ctx, playerID, "weapon_primary", playerItemID)
		assert.Equal(t, domain.ErrBrokenAccountState, err)
	})
}
