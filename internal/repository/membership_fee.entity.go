package repository

import (
	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type MembershipFeeEntity struct {
	ID           int64  `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	AssigneeName string `db:"assignee_name" gorm:"column:assignee_name;size:120;not null;uniqueIndex:uniq_fee_name_month_year"`
	Month        int    `db:"month"         gorm:"column:month;not null;uniqueIndex:uniq_fee_name_month_year"`
	Year         int    `db:"year"          gorm:"column:year;not null;uniqueIndex:uniq_fee_name_month_year;index:idx_fee_year_month"`
	pg.Audit
}

func (MembershipFeeEntity) TableName() string {
	return "membership_fee_record"
}

func toMembershipFeeEntity(m *model.MembershipFeeRecord) *MembershipFeeEntity {
	if m == nil {
		return nil
	}
	return &MembershipFeeEntity{
		ID:           m.ID,
		AssigneeName: m.AssigneeName,
		Month:        m.Month,
		Year:         m.Year,
	}
}

func toMembershipFeeModel(e *MembershipFeeEntity) *model.MembershipFeeRecord {
	if e == nil {
		return nil
	}
	return &model.MembershipFeeRecord{
		ID:           e.ID,
		AssigneeName: e.AssigneeName,
		Month:        e.Month,
		Year:         e.Year,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toMembershipFeeModels(entities []*MembershipFeeEntity) []*model.MembershipFeeRecord {
	if entities == nil {
		return nil
	}
	models := make([]*model.MembershipFeeRecord, len(entities))
	for i, e := range entities {
		models[i] = toMembershipFeeModel(e)
	}
	return models
}
