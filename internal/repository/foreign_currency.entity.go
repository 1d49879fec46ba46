package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type ForeignCurrencyEntity struct {
	ID              int64                 `db:"id"               gorm:"primaryKey;autoIncrement;column:id"`
	Code            string                `db:"code"             gorm:"column:code;size:3;not null;index"`
	Date            time.Time             `db:"date"             gorm:"column:date;not null;index"`
	Inflow          decimal.Decimal       `db:"inflow"           gorm:"column:inflow;type:decimal(14,6);not null;default:0"`
	PurchaseForeign decimal.Decimal       `db:"purchase_foreign" gorm:"column:purchase_foreign;type:decimal(14,6);not null;default:0"`
	PurchaseLocal   decimal.Decimal       `db:"purchase_local"   gorm:"column:purchase_local;type:decimal(14,2);not null;default:0"`
	OutflowForeign  decimal.Decimal       `db:"outflow_foreign"  gorm:"column:outflow_foreign;type:decimal(14,6);not null;default:0"`
	RateOfDay       decimal.Decimal       `db:"rate_of_day"      gorm:"column:rate_of_day;type:decimal(14,4);not null;default:0"`
	SaleLocal       decimal.Decimal       `db:"sale_local"       gorm:"column:sale_local;type:decimal(14,2);not null;default:0"`
	BalanceLocal    decimal.Decimal       `db:"balance_local"    gorm:"column:balance_local;type:decimal(16,2);not null"`
	StatusID        int64                 `db:"status_id"        gorm:"column:status_id;not null;index"`
	Status          *CurrencyStatusEntity `gorm:"foreignKey:StatusID;references:ID;constraint:OnDelete:RESTRICT"`
	pg.Audit
}

func (ForeignCurrencyEntity) TableName() string {
	return "foreign_currency_entry"
}

func toForeignCurrencyEntity(m *model.ForeignCurrencyEntry) *ForeignCurrencyEntity {
	if m == nil {
		return nil
	}
	return &ForeignCurrencyEntity{
		ID:              m.ID,
		Code:            m.Code,
		Date:            m.Date,
		Inflow:          m.Inflow,
		PurchaseForeign: m.PurchaseForeign,
		PurchaseLocal:   m.PurchaseLocal,
		OutflowForeign:  m.OutflowForeign,
		RateOfDay:       m.RateOfDay,
		SaleLocal:       m.SaleLocal,
		BalanceLocal:    m.BalanceLocal,
		StatusID:        m.StatusID,
	}
}

func toForeignCurrencyModel(e *ForeignCurrencyEntity) *model.ForeignCurrencyEntry {
	if e == nil {
		return nil
	}
	m := &model.ForeignCurrencyEntry{
		ID:              e.ID,
		Code:            e.Code,
		Date:            e.Date,
		Inflow:          e.Inflow,
		PurchaseForeign: e.PurchaseForeign,
		PurchaseLocal:   e.PurchaseLocal,
		OutflowForeign:  e.OutflowForeign,
		RateOfDay:       e.RateOfDay,
		SaleLocal:       e.SaleLocal,
		BalanceLocal:    e.BalanceLocal,
		StatusID:        e.StatusID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Status != nil {
		m.Status = catalogRef(&e.Status.CatalogColumns)
	}
	return m
}

func toForeignCurrencyModels(entities []*ForeignCurrencyEntity) []*model.ForeignCurrencyEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.ForeignCurrencyEntry, len(entities))
	for i, e := range entities {
		models[i] = toForeignCurrencyModel(e)
	}
	return models
}
