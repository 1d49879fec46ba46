// Package seed installs the initial lookup vocabulary. Applying it twice is
// a no-op; rolling it back removes exactly the seeded names and nothing an
// operator added afterwards.
package seed

import (
	"context"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/logger"
)

// Vocabulary is the versioned seed contract: consumers needing these values
// must read them from the lookup tables, never hard-code them.
var Vocabulary = map[model.CatalogKind][]string{
	model.CatalogDueStatus: {
		"Arrived", "Not arrived", "Check online", "Upcoming",
		"Overdue", "Paid", "Collected", "Unpaid",
	},
	model.CatalogExpenseConcept: {
		"Church electricity", "Pastoral house electricity", "Church gas",
		"Bookstore", "Cleaning supplies", "Other",
	},
	model.CatalogPaymentSituation: {
		"Cash", "Debit", "Provider wallet", "Other", "Checked",
	},
	model.CatalogLocationDescription: {
		"Church", "Pastoral house", "Sunday school",
	},
	model.CatalogCurrencyStatus: {
		"Active", "In progress", "Finished",
	},
	model.CatalogMailboxWithdrawalRole: {
		"Pastor", "Treasurer", "Deacon", "Secretary",
	},
	model.CatalogDeliveredToRole: {
		"Treasurer", "Assistant treasurer",
	},
}

// Apply inserts every vocabulary name that is not already present. The whole
// batch runs in one transaction.
func Apply(ctx context.Context, repo *repository.CatalogRepository) error {
	return repo.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, kind := range model.CatalogKinds {
			for _, name := range Vocabulary[kind] {
				_, created, err := repo.GetOrCreate(ctx, kind, name)
				if err != nil {
					return err
				}
				if created {
					logger.Debug("seed: catalog entry created", "kind", string(kind), "name", name)
				}
			}
		}
		return nil
	})
}

// Rollback deletes the seeded names, leaving operator-created entries of the
// same kinds untouched. It runs in one transaction: a seeded name that is
// still referenced blocks the rollback with a protect error and every seeded
// name stays in place.
func Rollback(ctx context.Context, repo *repository.CatalogRepository) error {
	return repo.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, kind := range model.CatalogKinds {
			if err := repo.DeleteByNames(ctx, kind, Vocabulary[kind]); err != nil {
				return err
			}
		}
		return nil
	})
}
