package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

func TestDonationRepository_CRUD(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewDonationRepository(db)
	catalogs := NewCatalogRepository(db)
	ctx := context.Background()

	withdrawal, err := catalogs.Create(ctx, model.CatalogMailboxWithdrawalRole, "Pastor")
	require.NoError(t, err)
	delivered, err := catalogs.Create(ctx, model.CatalogDeliveredToRole, "Treasurer")
	require.NoError(t, err)

	entry, err := repo.Create(ctx, &model.DonationEntry{
		Date:             day(2024, 10, 6),
		WithdrawalRoleID: withdrawal.ID,
		DeliveredToID:    delivered.ID,
		Amount:           decimal.RequireFromString("75.00"),
		Balance:          decimal.RequireFromString("275.00"),
		Concept:          "Mailbox collection",
	})
	require.NoError(t, err)

	t.Run("get resolves both roles", func(t *testing.T) {
		got, err := repo.Get(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got.WithdrawalRole)
		assert.Equal(t, "Pastor", got.WithdrawalRole.Name)
		require.NotNil(t, got.DeliveredTo)
		assert.Equal(t, "Treasurer", got.DeliveredTo.Name)
	})

	t.Run("roles in use refuse deletion", func(t *testing.T) {
		err := catalogs.Delete(ctx, model.CatalogMailboxWithdrawalRole, withdrawal.ID)
		assert.ErrorIs(t, err, ErrCatalogInUse)
		err = catalogs.Delete(ctx, model.CatalogDeliveredToRole, delivered.ID)
		assert.ErrorIs(t, err, ErrCatalogInUse)
	})

	t.Run("filter by role", func(t *testing.T) {
		items, total, err := repo.List(ctx, model.DonationFilter{WithdrawalRoleID: &withdrawal.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, items, 1)
	})

	t.Run("delete then roles free up", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, entry.ID))
		assert.NoError(t, catalogs.Delete(ctx, model.CatalogMailboxWithdrawalRole, withdrawal.ID))
	})
}
