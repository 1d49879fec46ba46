package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueItem tracks a bill from reception to settlement. The four lookups it
// references are protected from deletion while the item exists.
type DueItem struct {
	ID           int64           `json:"id"`
	Date         time.Time       `json:"date"` // registration or reception date
	DueDate      time.Time       `json:"due_date"`
	ConceptID    int64           `json:"concept_id"`
	Concept      *CatalogEntry   `json:"concept,omitempty"`
	LocationID   int64           `json:"location_id"`
	Location     *CatalogEntry   `json:"location,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note"`
	StatusID     int64           `json:"status_id"`
	Status       *CatalogEntry   `json:"status,omitempty"`
	SituationID  int64           `json:"situation_id"`
	Situation    *CatalogEntry   `json:"situation,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type DueItemCreateRequest struct {
	Date        time.Time       `json:"date"`
	DueDate     time.Time       `json:"due_date"`
	ConceptID   int64           `json:"concept_id"`
	LocationID  int64           `json:"location_id"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	StatusID    int64           `json:"status_id"`
	SituationID int64           `json:"situation_id"`
}

func (p DueItemCreateRequest) Validate() error {
	e := &ValidationError{}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	if p.DueDate.IsZero() {
		e.add(ErrCodeRequired, "due_date", "due_date is required")
	}
	if p.ConceptID == 0 {
		e.add(ErrCodeRequired, "concept_id", "concept_id is required")
	}
	if p.LocationID == 0 {
		e.add(ErrCodeRequired, "location_id", "location_id is required")
	}
	if p.StatusID == 0 {
		e.add(ErrCodeRequired, "status_id", "status_id is required")
	}
	if p.SituationID == 0 {
		e.add(ErrCodeRequired, "situation_id", "situation_id is required")
	}
	e.requireNonNegative("amount", p.Amount)
	return e.orNil()
}

type DueItemFilter struct {
	ConceptID   *int64
	StatusID    *int64
	SituationID *int64
	LocationID  *int64
	DueFrom     *time.Time
	DueTo       *time.Time
	Limit       int
	Offset      int
	Desc        bool // order by due_date
}
