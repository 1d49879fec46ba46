package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

func TestMembershipFeeRepository_CompositeUniqueness(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewMembershipFeeRepository(db)
	ctx := context.Background()

	base, err := repo.Create(ctx, &model.MembershipFeeRecord{
		AssigneeName: "Maria Lopez", Month: 3, Year: 2024,
	})
	require.NoError(t, err)

	t.Run("exact duplicate rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: "Maria Lopez", Month: 3, Year: 2024,
		})
		assert.ErrorIs(t, err, ErrDuplicateMembershipFee)
	})

	t.Run("changing any one field succeeds", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: "Maria Lopez", Month: 4, Year: 2024,
		})
		assert.NoError(t, err)

		_, err = repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: "Maria Lopez", Month: 3, Year: 2025,
		})
		assert.NoError(t, err)

		_, err = repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: "John Smith", Month: 3, Year: 2024,
		})
		assert.NoError(t, err)
	})

	t.Run("update onto existing triple rejected", func(t *testing.T) {
		other, err := repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: "Maria Lopez", Month: 5, Year: 2024,
		})
		require.NoError(t, err)

		other.Month = 3
		_, err = repo.Update(ctx, other)
		assert.ErrorIs(t, err, ErrDuplicateMembershipFee)
	})

	t.Run("update keeping own triple succeeds", func(t *testing.T) {
		updated, err := repo.Update(ctx, base)
		require.NoError(t, err)
		assert.Equal(t, base.ID, updated.ID)
	})
}

func TestMembershipFeeRepository_ListAndDelete(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewMembershipFeeRepository(db)
	ctx := context.Background()

	seedRows := []model.MembershipFeeRecord{
		{AssigneeName: "Ana", Month: 1, Year: 2023},
		{AssigneeName: "Ana", Month: 2, Year: 2023},
		{AssigneeName: "Ben", Month: 1, Year: 2024},
	}
	for i := range seedRows {
		_, err := repo.Create(ctx, &seedRows[i])
		require.NoError(t, err)
	}

	t.Run("filter by year", func(t *testing.T) {
		year := 2023
		items, total, err := repo.List(ctx, model.MembershipFeeFilter{Year: &year})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, items, 2)
	})

	t.Run("filter by assignee", func(t *testing.T) {
		name := "Ben"
		items, total, err := repo.List(ctx, model.MembershipFeeFilter{AssigneeName: &name})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Ben", items[0].AssigneeName)
	})

	t.Run("delete frees the triple", func(t *testing.T) {
		items, _, err := repo.List(ctx, model.MembershipFeeFilter{})
		require.NoError(t, err)
		require.NotEmpty(t, items)

		victim := items[0]
		require.NoError(t, repo.Delete(ctx, victim.ID))

		_, err = repo.Create(ctx, &model.MembershipFeeRecord{
			AssigneeName: victim.AssigneeName, Month: victim.Month, Year: victim.Year,
		})
		assert.NoError(t, err)
	})

	t.Run("delete missing", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}
