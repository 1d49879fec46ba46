package repository

import (
	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

// CatalogColumns is the shared shape of every lookup table: a unique name
// plus the audit pair.
type CatalogColumns struct {
	ID   int64  `db:"id"   gorm:"primaryKey;autoIncrement;column:id"`
	Name string `db:"name" gorm:"column:name;size:100;not null;unique"`
	pg.Audit
}

type DueStatusEntity struct{ CatalogColumns }

func (DueStatusEntity) TableName() string { return "due_status" }

type ExpenseConceptEntity struct{ CatalogColumns }

func (ExpenseConceptEntity) TableName() string { return "expense_concept" }

type PaymentSituationEntity struct{ CatalogColumns }

func (PaymentSituationEntity) TableName() string { return "payment_situation" }

type LocationDescriptionEntity struct{ CatalogColumns }

func (LocationDescriptionEntity) TableName() string { return "location_description" }

type CurrencyStatusEntity struct{ CatalogColumns }

func (CurrencyStatusEntity) TableName() string { return "currency_status" }

type MailboxWithdrawalRoleEntity struct{ CatalogColumns }

func (MailboxWithdrawalRoleEntity) TableName() string { return "mailbox_withdrawal_role" }

type DeliveredToRoleEntity struct{ CatalogColumns }

func (DeliveredToRoleEntity) TableName() string { return "delivered_to_role" }

// dependent names one transactional column that references a lookup table.
// Deleting a lookup row is refused while any dependent row points at it.
type dependent struct {
	table  string
	column string
}

type catalogSchema struct {
	table      string
	dependents []dependent
}

// catalogTables is the registry the catalog repository works from. The
// dependent lists mirror the RESTRICT foreign keys declared on the
// transactional entities.
var catalogTables = map[model.CatalogKind]catalogSchema{
	model.CatalogDueStatus: {
		table:      "due_status",
		dependents: []dependent{{"due_item", "status_id"}},
	},
	model.CatalogExpenseConcept: {
		table:      "expense_concept",
		dependents: []dependent{{"due_item", "concept_id"}},
	},
	model.CatalogPaymentSituation: {
		table:      "payment_situation",
		dependents: []dependent{{"due_item", "situation_id"}},
	},
	model.CatalogLocationDescription: {
		table:      "location_description",
		dependents: []dependent{{"due_item", "location_id"}},
	},
	model.CatalogCurrencyStatus: {
		table:      "currency_status",
		dependents: []dependent{{"foreign_currency_entry", "status_id"}},
	},
	model.CatalogMailboxWithdrawalRole: {
		table:      "mailbox_withdrawal_role",
		dependents: []dependent{{"donation_entry", "withdrawal_role_id"}},
	},
	model.CatalogDeliveredToRole: {
		table:      "delivered_to_role",
		dependents: []dependent{{"donation_entry", "delivered_to_id"}},
	},
}

// catalogRow is the scan target shared by every lookup table.
type catalogRow struct {
	ID   int64  `gorm:"column:id"`
	Name string `gorm:"column:name"`
	pg.Audit
}

func toCatalogModel(e *catalogRow) *model.CatalogEntry {
	if e == nil {
		return nil
	}
	return &model.CatalogEntry{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toCatalogModels(rows []*catalogRow) []*model.CatalogEntry {
	if rows == nil {
		return nil
	}
	models := make([]*model.CatalogEntry, len(rows))
	for i, e := range rows {
		models[i] = toCatalogModel(e)
	}
	return models
}
