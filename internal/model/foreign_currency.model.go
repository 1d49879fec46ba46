package model

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// currencyCodeRe accepts ISO-4217-shaped codes only: exactly three uppercase
// letters (USD, EUR, ...).
var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// ForeignCurrencyEntry records a foreign-currency movement together with the
// purchase/sale legs in local currency and the day's exchange rate. Foreign
// amounts carry six fractional digits, local legs two, the rate four.
type ForeignCurrencyEntry struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	Date            time.Time       `json:"date"`
	Inflow          decimal.Decimal `json:"inflow"`
	PurchaseForeign decimal.Decimal `json:"purchase_foreign"`
	PurchaseLocal   decimal.Decimal `json:"purchase_local"`
	OutflowForeign  decimal.Decimal `json:"outflow_foreign"`
	RateOfDay       decimal.Decimal `json:"rate_of_day"`
	SaleLocal       decimal.Decimal `json:"sale_local"`
	BalanceLocal    decimal.Decimal `json:"balance_local"`
	StatusID        int64           `json:"status_id"`
	Status          *CatalogEntry   `json:"status,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ForeignCurrencyCreateRequest struct {
	Code            string          `json:"code"`
	Date            time.Time       `json:"date"`
	Inflow          decimal.Decimal `json:"inflow"`
	PurchaseForeign decimal.Decimal `json:"purchase_foreign"`
	PurchaseLocal   decimal.Decimal `json:"purchase_local"`
	OutflowForeign  decimal.Decimal `json:"outflow_foreign"`
	RateOfDay       decimal.Decimal `json:"rate_of_day"`
	SaleLocal       decimal.Decimal `json:"sale_local"`
	BalanceLocal    decimal.Decimal `json:"balance_local"`
	StatusID        int64           `json:"status_id"`
}

func (p ForeignCurrencyCreateRequest) Validate() error {
	e := &ValidationError{}
	if !currencyCodeRe.MatchString(p.Code) {
		e.add(ErrCodePatternMismatch, "code", "use an uppercase ISO 4217 code (e.g. USD)")
	}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	if p.StatusID == 0 {
		e.add(ErrCodeRequired, "status_id", "status_id is required")
	}
	e.requireNonNegative("inflow", p.Inflow)
	e.requireNonNegative("purchase_foreign", p.PurchaseForeign)
	e.requireNonNegative("purchase_local", p.PurchaseLocal)
	e.requireNonNegative("outflow_foreign", p.OutflowForeign)
	e.requireNonNegative("rate_of_day", p.RateOfDay)
	e.requireNonNegative("sale_local", p.SaleLocal)
	return e.orNil()
}

type ForeignCurrencyFilter struct {
	Code     *string
	StatusID *int64
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
	Desc     bool
}
