package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

func TestForeignCurrencyRepository_CRUD(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewForeignCurrencyRepository(db)
	catalogs := NewCatalogRepository(db)
	ctx := context.Background()

	status, err := catalogs.Create(ctx, model.CatalogCurrencyStatus, "Active")
	require.NoError(t, err)

	entry, err := repo.Create(ctx, &model.ForeignCurrencyEntry{
		Code:            "USD",
		Date:            day(2024, 8, 1),
		Inflow:          decimal.RequireFromString("100.123456"),
		PurchaseForeign: decimal.RequireFromString("50.000001"),
		PurchaseLocal:   decimal.RequireFromString("51234.56"),
		OutflowForeign:  decimal.Zero,
		RateOfDay:       decimal.RequireFromString("1024.6915"),
		SaleLocal:       decimal.Zero,
		BalanceLocal:    decimal.RequireFromString("51234.56"),
		StatusID:        status.ID,
	})
	require.NoError(t, err)

	t.Run("six decimal places survive the round trip", func(t *testing.T) {
		got, err := repo.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.True(t, got.Inflow.Equal(decimal.RequireFromString("100.123456")))
		assert.True(t, got.RateOfDay.Equal(decimal.RequireFromString("1024.6915")))
		assert.Equal(t, "USD", got.Code)
		require.NotNil(t, got.Status)
		assert.Equal(t, "Active", got.Status.Name)
	})

	t.Run("update", func(t *testing.T) {
		finished, err := catalogs.Create(ctx, model.CatalogCurrencyStatus, "Finished")
		require.NoError(t, err)

		entry.StatusID = finished.ID
		entry.SaleLocal = decimal.RequireFromString("51300.00")
		updated, err := repo.Update(ctx, entry)
		require.NoError(t, err)
		require.NotNil(t, updated.Status)
		assert.Equal(t, "Finished", updated.Status.Name)
		assert.True(t, updated.SaleLocal.Equal(decimal.RequireFromString("51300.00")))
	})

	t.Run("status in use cannot be deleted", func(t *testing.T) {
		err := catalogs.Delete(ctx, model.CatalogCurrencyStatus, entry.StatusID)
		assert.ErrorIs(t, err, ErrCatalogInUse)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, entry.ID))
		_, err := repo.Get(ctx, entry.ID)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestForeignCurrencyRepository_List(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewForeignCurrencyRepository(db)
	catalogs := NewCatalogRepository(db)
	ctx := context.Background()

	status, err := catalogs.Create(ctx, model.CatalogCurrencyStatus, "Active")
	require.NoError(t, err)

	for _, code := range []string{"USD", "USD", "EUR"} {
		_, err := repo.Create(ctx, &model.ForeignCurrencyEntry{
			Code:         code,
			Date:         day(2024, 9, 1),
			BalanceLocal: decimal.NewFromInt(100),
			StatusID:     status.ID,
		})
		require.NoError(t, err)
	}

	usd := "USD"
	items, total, err := repo.List(ctx, model.ForeignCurrencyFilter{Code: &usd})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)
}
