package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type PaymentProviderEntity struct {
	ID       int64           `db:"id"       gorm:"primaryKey;autoIncrement;column:id"`
	Date     time.Time       `db:"date"     gorm:"column:date;not null;index"`
	Inflow   decimal.Decimal `db:"inflow"   gorm:"column:inflow;type:decimal(12,2);not null;default:0"`
	Outflow  decimal.Decimal `db:"outflow"  gorm:"column:outflow;type:decimal(12,2);not null;default:0"`
	Interest decimal.Decimal `db:"interest" gorm:"column:interest;type:decimal(12,2);not null;default:0"`
	Balance  decimal.Decimal `db:"balance"  gorm:"column:balance;type:decimal(14,2);not null"`
	pg.Audit
}

func (PaymentProviderEntity) TableName() string {
	return "payment_provider_entry"
}

func toPaymentProviderEntity(m *model.PaymentProviderEntry) *PaymentProviderEntity {
	if m == nil {
		return nil
	}
	return &PaymentProviderEntity{
		ID:       m.ID,
		Date:     m.Date,
		Inflow:   m.Inflow,
		Outflow:  m.Outflow,
		Interest: m.Interest,
		Balance:  m.Balance,
	}
}

func toPaymentProviderModel(e *PaymentProviderEntity) *model.PaymentProviderEntry {
	if e == nil {
		return nil
	}
	return &model.PaymentProviderEntry{
		ID:        e.ID,
		Date:      e.Date,
		Inflow:    e.Inflow,
		Outflow:   e.Outflow,
		Interest:  e.Interest,
		Balance:   e.Balance,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toPaymentProviderModels(entities []*PaymentProviderEntity) []*model.PaymentProviderEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.PaymentProviderEntry, len(entities))
	for i, e := range entities {
		models[i] = toPaymentProviderModel(e)
	}
	return models
}
