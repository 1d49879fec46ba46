package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProviderEntry mirrors the cash ledger for the secondary payment
// provider account. Interest accrued by the provider is tracked separately;
// the operator-entered balance already includes it.
type PaymentProviderEntry struct {
	ID        int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Inflow    decimal.Decimal `json:"inflow"`
	Outflow   decimal.Decimal `json:"outflow"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PaymentProviderCreateRequest struct {
	Date     time.Time       `json:"date"`
	Inflow   decimal.Decimal `json:"inflow"`
	Outflow  decimal.Decimal `json:"outflow"`
	Interest decimal.Decimal `json:"interest"`
	Balance  decimal.Decimal `json:"balance"`
}

func (p PaymentProviderCreateRequest) Validate() error {
	e := &ValidationError{}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	e.requireNonNegative("inflow", p.Inflow)
	e.requireNonNegative("outflow", p.Outflow)
	e.requireNonNegative("interest", p.Interest)
	return e.orNil()
}

type PaymentProviderFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
	Desc   bool
}
