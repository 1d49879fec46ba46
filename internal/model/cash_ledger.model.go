package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashLedgerEntry is one dated cash movement. Balance is operator-entered
// (manual reconciliation), never derived from the running totals.
type CashLedgerEntry struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CashLedgerCreateRequest struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Balance     decimal.Decimal `json:"balance"`
}

func (p CashLedgerCreateRequest) Validate() error {
	e := &ValidationError{}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	if len(p.Description) > 255 {
		e.add(ErrCodeMaxValue, "description", "description must be at most 255 characters")
	}
	e.requireNonNegative("inflow", p.Inflow)
	e.requireNonNegative("outflow", p.Outflow)
	e.requireMin("balance", p.Balance, BalanceFloor)
	return e.orNil()
}

// CashLedgerFilter controls List queries.
type CashLedgerFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int // default 50
	Offset int
	Desc   bool // order by date
}
