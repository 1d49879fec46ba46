package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type DueItemEntity struct {
	ID          int64                      `db:"id"           gorm:"primaryKey;autoIncrement;column:id"`
	Date        time.Time                  `db:"date"         gorm:"column:date;not null"`
	DueDate     time.Time                  `db:"due_date"     gorm:"column:due_date;not null;index"`
	ConceptID   int64                      `db:"concept_id"   gorm:"column:concept_id;not null;index"`
	Concept     *ExpenseConceptEntity      `gorm:"foreignKey:ConceptID;references:ID;constraint:OnDelete:RESTRICT"`
	LocationID  int64                      `db:"location_id"  gorm:"column:location_id;not null"`
	Location    *LocationDescriptionEntity `gorm:"foreignKey:LocationID;references:ID;constraint:OnDelete:RESTRICT"`
	Amount      decimal.Decimal            `db:"amount"       gorm:"column:amount;type:decimal(12,2);not null"`
	Note        string                     `db:"note"         gorm:"column:note;type:text"`
	StatusID    int64                      `db:"status_id"    gorm:"column:status_id;not null;index"`
	Status      *DueStatusEntity           `gorm:"foreignKey:StatusID;references:ID;constraint:OnDelete:RESTRICT"`
	SituationID int64                      `db:"situation_id" gorm:"column:situation_id;not null"`
	Situation   *PaymentSituationEntity    `gorm:"foreignKey:SituationID;references:ID;constraint:OnDelete:RESTRICT"`
	pg.Audit
}

func (DueItemEntity) TableName() string {
	return "due_item"
}

func catalogRef(c *CatalogColumns) *model.CatalogEntry {
	if c == nil {
		return nil
	}
	return &model.CatalogEntry{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toDueItemEntity(m *model.DueItem) *DueItemEntity {
	if m == nil {
		return nil
	}
	return &DueItemEntity{
		ID:          m.ID,
		Date:        m.Date,
		DueDate:     m.DueDate,
		ConceptID:   m.ConceptID,
		LocationID:  m.LocationID,
		Amount:      m.Amount,
		Note:        m.Note,
		StatusID:    m.StatusID,
		SituationID: m.SituationID,
	}
}

func toDueItemModel(e *DueItemEntity) *model.DueItem {
	if e == nil {
		return nil
	}
	m := &model.DueItem{
		ID:          e.ID,
		Date:        e.Date,
		DueDate:     e.DueDate,
		ConceptID:   e.ConceptID,
		LocationID:  e.LocationID,
		Amount:      e.Amount,
		Note:        e.Note,
		StatusID:    e.StatusID,
		SituationID: e.SituationID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Concept != nil {
		m.Concept = catalogRef(&e.Concept.CatalogColumns)
	}
	if e.Location != nil {
		m.Location = catalogRef(&e.Location.CatalogColumns)
	}
	if e.Status != nil {
		m.Status = catalogRef(&e.Status.CatalogColumns)
	}
	if e.Situation != nil {
		m.Situation = catalogRef(&e.Situation.CatalogColumns)
	}
	return m
}

func toDueItemModels(entities []*DueItemEntity) []*model.DueItem {
	if entities == nil {
		return nil
	}
	models := make([]*model.DueItem, len(entities))
	for i, e := range entities {
		models[i] = toDueItemModel(e)
	}
	return models
}
