package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type DonationEntity struct {
	ID               int64                        `db:"id"                 gorm:"primaryKey;autoIncrement;column:id"`
	Date             time.Time                    `db:"date"               gorm:"column:date;not null;index"`
	WithdrawalRoleID int64                        `db:"withdrawal_role_id" gorm:"column:withdrawal_role_id;not null;index"`
	WithdrawalRole   *MailboxWithdrawalRoleEntity `gorm:"foreignKey:WithdrawalRoleID;references:ID;constraint:OnDelete:RESTRICT"`
	DeliveredToID    int64                        `db:"delivered_to_id"    gorm:"column:delivered_to_id;not null;index"`
	DeliveredTo      *DeliveredToRoleEntity       `gorm:"foreignKey:DeliveredToID;references:ID;constraint:OnDelete:RESTRICT"`
	Amount           decimal.Decimal              `db:"amount"             gorm:"column:amount;type:decimal(12,2);not null"`
	Balance          decimal.Decimal              `db:"balance"            gorm:"column:balance;type:decimal(12,2);not null"`
	Concept          string                       `db:"concept"            gorm:"column:concept;size:200"`
	pg.Audit
}

func (DonationEntity) TableName() string {
	return "donation_entry"
}

func toDonationEntity(m *model.DonationEntry) *DonationEntity {
	if m == nil {
		return nil
	}
	return &DonationEntity{
		ID:               m.ID,
		Date:             m.Date,
		WithdrawalRoleID: m.WithdrawalRoleID,
		DeliveredToID:    m.DeliveredToID,
		Amount:           m.Amount,
		Balance:          m.Balance,
		Concept:          m.Concept,
	}
}

func toDonationModel(e *DonationEntity) *model.DonationEntry {
	if e == nil {
		return nil
	}
	m := &model.DonationEntry{
		ID:               e.ID,
		Date:             e.Date,
		WithdrawalRoleID: e.WithdrawalRoleID,
		DeliveredToID:    e.DeliveredToID,
		Amount:           e.Amount,
		Balance:          e.Balance,
		Concept:          e.Concept,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.WithdrawalRole != nil {
		m.WithdrawalRole = catalogRef(&e.WithdrawalRole.CatalogColumns)
	}
	if e.DeliveredTo != nil {
		m.DeliveredTo = catalogRef(&e.DeliveredTo.CatalogColumns)
	}
	return m
}

func toDonationModels(entities []*DonationEntity) []*model.DonationEntry {
	if entities == nil {
		return nil
	}
	models := make([]*model.DonationEntry, len(entities))
	for i, e := range entities {
		models[i] = toDonationModel(e)
	}
	return models
}
