package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type CashLedgerEntity struct {
	ID          int64           `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time       `db:"date"        gorm:"column:date;not null;index"`
	Description string          `db:"description" gorm:"column:description;size:255"`
	Inflow      decimal.Decimal `db:"inflow"      gorm:"column:inflow;type:decimal(12,2);not null;default:0"`
	Outflow     decimal.Decimal `db:"outflow"     gorm:"column:outflow;type:decimal(12,2);not null;default:0"`
	Balance     decimal.Decimal `db:"balance"     gorm:"column:balance;type:decimal(14,2);not null"`
	pg.Audit
}

func (CashLedgerEntity) TableName() string {
	return "cash_ledger_entry"
}

func toCashLedgerEntity(m *model.CashLedgerEntry) *CashLedgerEntity {
	if m == nil {
		return nil
	}
	return &CashLedgerEntity{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Inflow:      m.Inflow,
		Outflow:     m.Outflow,
		Balance:     m.Balance,
	}
}

func toCashLedgerModel(e *CashLedgerEntity) *model.CashLedgerEntry {
	if e == nil {
		return nil
	}
	return &model.CashLedgerEntry{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Inflow:      e.Inflow,
		Outflow:     e.Outflow,
		Balance:     e.Balance,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toCashLedgerModels(entities []*CashLedgerEntity) []*model.CashLedgerEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.CashLedgerEntry, len(entities))
	for i, e := range entities {
		models[i] = toCashLedgerModel(e)
	}
	return models
}
