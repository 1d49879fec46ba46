package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

type dueItemRefs struct {
	concept   *model.CatalogEntry
	location  *model.CatalogEntry
	status    *model.CatalogEntry
	situation *model.CatalogEntry
}

func seedDueItemRefs(t *testing.T, catalogs *CatalogRepository) dueItemRefs {
	t.Helper()
	ctx := context.Background()

	concept, err := catalogs.Create(ctx, model.CatalogExpenseConcept, "Church gas")
	require.NoError(t, err)
	location, err := catalogs.Create(ctx, model.CatalogLocationDescription, "Pastoral house")
	require.NoError(t, err)
	status, err := catalogs.Create(ctx, model.CatalogDueStatus, "Upcoming")
	require.NoError(t, err)
	situation, err := catalogs.Create(ctx, model.CatalogPaymentSituation, "Debit")
	require.NoError(t, err)

	return dueItemRefs{concept: concept, location: location, status: status, situation: situation}
}

func TestDueItemRepository_CRUD(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewDueItemRepository(db)
	catalogs := NewCatalogRepository(db)
	ctx := context.Background()
	refs := seedDueItemRefs(t, catalogs)

	item, err := repo.Create(ctx, &model.DueItem{
		Date:        day(2024, 6, 1),
		DueDate:     day(2024, 6, 20),
		ConceptID:   refs.concept.ID,
		LocationID:  refs.location.ID,
		Amount:      decimal.RequireFromString("89.90"),
		Note:        "June bill",
		StatusID:    refs.status.ID,
		SituationID: refs.situation.ID,
	})
	require.NoError(t, err)

	t.Run("create resolves lookups", func(t *testing.T) {
		require.NotNil(t, item.Concept)
		assert.Equal(t, "Church gas", item.Concept.Name)
		require.NotNil(t, item.Location)
		assert.Equal(t, "Pastoral house", item.Location.Name)
		require.NotNil(t, item.Status)
		assert.Equal(t, "Upcoming", item.Status.Name)
		require.NotNil(t, item.Situation)
		assert.Equal(t, "Debit", item.Situation.Name)
	})

	t.Run("update moves status", func(t *testing.T) {
		paid, err := catalogs.Create(ctx, model.CatalogDueStatus, "Paid")
		require.NoError(t, err)

		item.StatusID = paid.ID
		updated, err := repo.Update(ctx, item)
		require.NoError(t, err)
		require.NotNil(t, updated.Status)
		assert.Equal(t, "Paid", updated.Status.Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, item.ID))
		_, err := repo.Get(ctx, item.ID)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestDueItemRepository_List(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewDueItemRepository(db)
	catalogs := NewCatalogRepository(db)
	ctx := context.Background()
	refs := seedDueItemRefs(t, catalogs)

	otherConcept, err := catalogs.Create(ctx, model.CatalogExpenseConcept, "Cleaning supplies")
	require.NoError(t, err)

	seeds := []struct {
		conceptID int64
		dueDate   int
	}{
		{refs.concept.ID, 5},
		{refs.concept.ID, 15},
		{otherConcept.ID, 25},
	}
	for _, s := range seeds {
		_, err := repo.Create(ctx, &model.DueItem{
			Date:        day(2024, 7, 1),
			DueDate:     day(2024, 7, s.dueDate),
			ConceptID:   s.conceptID,
			LocationID:  refs.location.ID,
			Amount:      decimal.NewFromInt(10),
			StatusID:    refs.status.ID,
			SituationID: refs.situation.ID,
		})
		require.NoError(t, err)
	}

	t.Run("filter by concept", func(t *testing.T) {
		items, total, err := repo.List(ctx, model.DueItemFilter{ConceptID: &refs.concept.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, items, 2)
	})

	t.Run("due date window", func(t *testing.T) {
		from := day(2024, 7, 10)
		to := day(2024, 7, 20)
		items, total, err := repo.List(ctx, model.DueItemFilter{DueFrom: &from, DueTo: &to})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.True(t, items[0].DueDate.Equal(day(2024, 7, 15)))
	})

	t.Run("ordered by due date with lookups resolved", func(t *testing.T) {
		items, _, err := repo.List(ctx, model.DueItemFilter{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.True(t, items[0].DueDate.Before(items[2].DueDate))
		require.NotNil(t, items[0].Concept)
		assert.Equal(t, "Church gas", items[0].Concept.Name)
	})
}
