package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationEntry records a mailbox withdrawal: who withdrew it and who the
// money was handed to, both constrained by role lookups.
type DonationEntry struct {
	ID               int64           `json:"id"`
	Date             time.Time       `json:"date"`
	WithdrawalRoleID int64           `json:"withdrawal_role_id"`
	WithdrawalRole   *CatalogEntry   `json:"withdrawal_role,omitempty"`
	DeliveredToID    int64           `json:"delivered_to_id"`
	DeliveredTo      *CatalogEntry   `json:"delivered_to,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Balance          decimal.Decimal `json:"balance"`
	Concept          string          `json:"concept"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type DonationCreateRequest struct {
	Date             time.Time       `json:"date"`
	WithdrawalRoleID int64           `json:"withdrawal_role_id"`
	DeliveredToID    int64           `json:"delivered_to_id"`
	Amount           decimal.Decimal `json:"amount"`
	Balance          decimal.Decimal `json:"balance"`
	Concept          string          `json:"concept"`
}

func (p DonationCreateRequest) Validate() error {
	e := &ValidationError{}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	if p.WithdrawalRoleID == 0 {
		e.add(ErrCodeRequired, "withdrawal_role_id", "withdrawal_role_id is required")
	}
	if p.DeliveredToID == 0 {
		e.add(ErrCodeRequired, "delivered_to_id", "delivered_to_id is required")
	}
	e.requireNonNegative("amount", p.Amount)
	if len(p.Concept) > 200 {
		e.add(ErrCodeMaxValue, "concept", "concept must be at most 200 characters")
	}
	return e.orNil()
}

type DonationFilter struct {
	WithdrawalRoleID *int64
	DeliveredToID    *int64
	From             *time.Time
	To               *time.Time
	Limit            int
	Offset           int
	Desc             bool
}
