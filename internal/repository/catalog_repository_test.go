package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

func TestCatalogRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		entry, err := repo.Create(ctx, model.CatalogDueStatus, "Arrived")
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.Equal(t, "Arrived", entry.Name)

		got, err := repo.Get(ctx, model.CatalogDueStatus, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CatalogDueStatus, "Arrived")
		assert.ErrorIs(t, err, ErrDuplicateCatalogName)
	})

	t.Run("same name allowed across kinds", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CatalogExpenseConcept, "Arrived")
		assert.NoError(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CatalogKind("bogus"), "X")
		assert.ErrorIs(t, err, ErrUnknownCatalogKind)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, model.CatalogDueStatus, 9999)
		assert.ErrorIs(t, err, ErrCatalogNotFound)
	})
}

func TestCatalogRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	first, created, err := repo.GetOrCreate(ctx, model.CatalogPaymentSituation, "Cash")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, model.CatalogPaymentSituation, "Cash")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	entries, err := repo.List(ctx, model.CatalogPaymentSituation)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalogRepository_List_OrderedByName(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Treasurer", "Deacon", "Pastor"} {
		_, err := repo.Create(ctx, model.CatalogMailboxWithdrawalRole, name)
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, model.CatalogMailboxWithdrawalRole)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Deacon", entries[0].Name)
	assert.Equal(t, "Pastor", entries[1].Name)
	assert.Equal(t, "Treasurer", entries[2].Name)
}

func TestCatalogRepository_Update(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	entry, err := repo.Create(ctx, model.CatalogCurrencyStatus, "Active")
	require.NoError(t, err)
	other, err := repo.Create(ctx, model.CatalogCurrencyStatus, "Finished")
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		updated, err := repo.Update(ctx, model.CatalogCurrencyStatus, entry.ID, "In progress")
		require.NoError(t, err)
		assert.Equal(t, "In progress", updated.Name)
	})

	t.Run("rename onto existing name rejected", func(t *testing.T) {
		_, err := repo.Update(ctx, model.CatalogCurrencyStatus, entry.ID, "Finished")
		assert.ErrorIs(t, err, ErrDuplicateCatalogName)
	})

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		_, err := repo.Update(ctx, model.CatalogCurrencyStatus, other.ID, "Finished")
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := repo.Update(ctx, model.CatalogCurrencyStatus, 9999, "X")
		assert.ErrorIs(t, err, ErrCatalogNotFound)
	})
}

func TestCatalogRepository_Delete_Protected(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewCatalogRepository(tdb.DB)
	ctx := context.Background()

	concept, err := repo.Create(ctx, model.CatalogExpenseConcept, "Church electricity")
	require.NoError(t, err)
	location, err := repo.Create(ctx, model.CatalogLocationDescription, "Church")
	require.NoError(t, err)
	status, err := repo.Create(ctx, model.CatalogDueStatus, "Unpaid")
	require.NoError(t, err)
	situation, err := repo.Create(ctx, model.CatalogPaymentSituation, "Cash")
	require.NoError(t, err)

	item := &DueItemEntity{
		Date:        time.Now(),
		DueDate:     time.Now(),
		ConceptID:   concept.ID,
		LocationID:  location.ID,
		Amount:      decimal.NewFromInt(100),
		StatusID:    status.ID,
		SituationID: situation.ID,
	}
	require.NoError(t, tdb.rawDB.Create(item).Error)

	t.Run("referenced row refuses deletion", func(t *testing.T) {
		err := repo.Delete(ctx, model.CatalogExpenseConcept, concept.ID)
		assert.ErrorIs(t, err, ErrCatalogInUse)

		// still present
		_, err = repo.Get(ctx, model.CatalogExpenseConcept, concept.ID)
		assert.NoError(t, err)
	})

	t.Run("unreferenced row deletes", func(t *testing.T) {
		spare, err := repo.Create(ctx, model.CatalogExpenseConcept, "Bookstore")
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, model.CatalogExpenseConcept, spare.ID))
		_, err = repo.Get(ctx, model.CatalogExpenseConcept, spare.ID)
		assert.ErrorIs(t, err, ErrCatalogNotFound)
	})

	t.Run("dependent removal unlocks deletion", func(t *testing.T) {
		require.NoError(t, tdb.rawDB.Delete(&DueItemEntity{}, item.ID).Error)
		assert.NoError(t, repo.Delete(ctx, model.CatalogExpenseConcept, concept.ID))
	})
}

func TestCatalogRepository_DeleteByNames(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Pastor", "Treasurer"} {
		_, err := repo.Create(ctx, model.CatalogDeliveredToRole, name)
		require.NoError(t, err)
	}
	operatorRow, err := repo.Create(ctx, model.CatalogDeliveredToRole, "Custom role")
	require.NoError(t, err)

	err = repo.DeleteByNames(ctx, model.CatalogDeliveredToRole, []string{"Pastor", "Treasurer"})
	require.NoError(t, err)

	entries, err := repo.List(ctx, model.CatalogDeliveredToRole)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, operatorRow.ID, entries[0].ID)

	t.Run("missing names are a no-op", func(t *testing.T) {
		err := repo.DeleteByNames(ctx, model.CatalogDeliveredToRole, []string{"Pastor"})
		assert.NoError(t, err)
	})
}
