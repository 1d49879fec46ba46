package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type EnvelopeAssignmentEntity struct {
	ID             int64  `db:"id"              gorm:"primaryKey;autoIncrement;column:id"`
	EnvelopeNumber int    `db:"envelope_number" gorm:"column:envelope_number;not null;unique"`
	AssigneeName   string `db:"assignee_name"   gorm:"column:assignee_name;size:120;not null"`
	pg.Audit
}

func (EnvelopeAssignmentEntity) TableName() string {
	return "envelope_assignment"
}

type PledgeCommitmentEntity struct {
	ID           int64                     `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	Date         time.Time                 `db:"date"          gorm:"column:date;not null;index"`
	AssignmentID int64                     `db:"assignment_id" gorm:"column:assignment_id;not null;index"`
	Assignment   *EnvelopeAssignmentEntity `gorm:"foreignKey:AssignmentID;references:ID;constraint:OnDelete:RESTRICT"`
	Amount       decimal.Decimal           `db:"amount"        gorm:"column:amount;type:decimal(12,2);not null"`
	Balance      decimal.Decimal           `db:"balance"       gorm:"column:balance;type:decimal(12,2);not null"`
	pg.Audit
}

func (PledgeCommitmentEntity) TableName() string {
	return "pledge_commitment"
}

func toAssignmentEntity(m *model.EnvelopeAssignment) *EnvelopeAssignmentEntity {
	if m == nil {
		return nil
	}
	return &EnvelopeAssignmentEntity{
		ID:             m.ID,
		EnvelopeNumber: m.EnvelopeNumber,
		AssigneeName:   m.AssigneeName,
	}
}

func toAssignmentModel(e *EnvelopeAssignmentEntity) *model.EnvelopeAssignment {
	if e == nil {
		return nil
	}
	return &model.EnvelopeAssignment{
		ID:             e.ID,
		EnvelopeNumber: e.EnvelopeNumber,
		AssigneeName:   e.AssigneeName,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toAssignmentModels(entities []*EnvelopeAssignmentEntity) []*model.EnvelopeAssignment {
	if entities == nil {
		return nil
	}
	models := make([]*model.EnvelopeAssignment, len(entities))
	for i, e := range entities {
		models[i] = toAssignmentModel(e)
	}
	return models
}

func toPledgeEntity(m *model.PledgeCommitment) *PledgeCommitmentEntity {
	if m == nil {
		return nil
	}
	// EnvelopeNumber and AssigneeName deliberately not mapped: they live on
	// the assignment only.
	return &PledgeCommitmentEntity{
		ID:           m.ID,
		Date:         m.Date,
		AssignmentID: m.AssignmentID,
		Amount:       m.Amount,
		Balance:      m.Balance,
	}
}

func toPledgeModel(e *PledgeCommitmentEntity) *model.PledgeCommitment {
	if e == nil {
		return nil
	}
	m := &model.PledgeCommitment{
		ID:           e.ID,
		Date:         e.Date,
		AssignmentID: e.AssignmentID,
		Amount:       e.Amount,
		Balance:      e.Balance,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Assignment != nil {
		m.EnvelopeNumber = e.Assignment.EnvelopeNumber
		m.AssigneeName = e.Assignment.AssigneeName
	}
	return m
}

func toPledgeModels(entities []*PledgeCommitmentEntity) []*model.PledgeCommitment {
	if entities == nil {
		return nil
	}
	models := make([]*model.PledgeCommitment, len(entities))
	for i, e := range entities {
		models[i] = toPledgeModel(e)
	}
	return models
}
