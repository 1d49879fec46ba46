package seed

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/pg"
)

func setupSeedDB(t *testing.T) (*pg.DB, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&repository.DueStatusEntity{},
		&repository.ExpenseConceptEntity{},
		&repository.PaymentSituationEntity{},
		&repository.LocationDescriptionEntity{},
		&repository.CurrencyStatusEntity{},
		&repository.MailboxWithdrawalRoleEntity{},
		&repository.DeliveredToRoleEntity{},
		&repository.DueItemEntity{},
		&repository.ForeignCurrencyEntity{},
		&repository.DonationEntity{},
	)
	require.NoError(t, err)

	pgDB := &pg.DB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()
	for _, field := range []string{"read", "write"} {
		f := pgDBValue.FieldByName(field)
		f = reflect.NewAt(f.Type(), f.Addr().UnsafePointer()).Elem()
		f.Set(reflect.ValueOf(db))
	}
	return pgDB, db
}

func countAll(t *testing.T, repo *repository.CatalogRepository) int {
	t.Helper()
	total := 0
	for _, kind := range model.CatalogKinds {
		entries, err := repo.List(context.Background(), kind)
		require.NoError(t, err)
		total += len(entries)
	}
	return total
}

func vocabularySize() int {
	total := 0
	for _, names := range Vocabulary {
		total += len(names)
	}
	return total
}

func TestSeed_ApplyIsIdempotent(t *testing.T) {
	db, _ := setupSeedDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repo))
	first := countAll(t, repo)
	assert.Equal(t, vocabularySize(), first)

	require.NoError(t, Apply(ctx, repo))
	assert.Equal(t, first, countAll(t, repo))
}

func TestSeed_RollbackRemovesOnlySeededNames(t *testing.T) {
	db, _ := setupSeedDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repo))

	operatorRow, err := repo.Create(ctx, model.CatalogExpenseConcept, "Organ maintenance")
	require.NoError(t, err)

	require.NoError(t, Rollback(ctx, repo))

	entries, err := repo.List(ctx, model.CatalogExpenseConcept)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, operatorRow.ID, entries[0].ID)

	for _, kind := range []model.CatalogKind{
		model.CatalogDueStatus,
		model.CatalogPaymentSituation,
		model.CatalogLocationDescription,
		model.CatalogCurrencyStatus,
		model.CatalogMailboxWithdrawalRole,
		model.CatalogDeliveredToRole,
	} {
		entries, err := repo.List(ctx, kind)
		require.NoError(t, err)
		assert.Empty(t, entries, "kind %s", kind)
	}
}

func TestSeed_RollbackBlockedByReference(t *testing.T) {
	db, raw := setupSeedDB(t)
	repo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repo))

	// Reference one seeded status from a currency entry.
	statuses, err := repo.List(ctx, model.CatalogCurrencyStatus)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)

	entry := &repository.ForeignCurrencyEntity{
		Code:         "USD",
		Date:         time.Now(),
		BalanceLocal: decimal.NewFromInt(100),
		StatusID:     statuses[0].ID,
	}
	require.NoError(t, raw.Create(entry).Error)

	err = Rollback(ctx, repo)
	assert.ErrorIs(t, err, repository.ErrCatalogInUse)

	// The blocked rollback is atomic: no kind lost any seeded name.
	assert.Equal(t, vocabularySize(), countAll(t, repo))

	// Drop the reference and the rollback goes through.
	require.NoError(t, raw.Delete(&repository.ForeignCurrencyEntity{}, entry.ID).Error)
	assert.NoError(t, Rollback(ctx, repo))
}
