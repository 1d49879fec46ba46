package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field error codes surfaced to the operator.
const (
	ErrCodeRequired        = "required"
	ErrCodeMinValue        = "min_value"
	ErrCodeMaxValue        = "max_value"
	ErrCodePatternMismatch = "pattern_mismatch"
	ErrCodeUniqueViolation = "unique_violation"
	ErrCodeRefNotFound     = "ref_not_found"
)

// RefNotFound builds the single-field error used when a referenced lookup
// row does not exist.
func RefNotFound(field string) *ValidationError {
	e := &ValidationError{}
	e.add(ErrCodeRefNotFound, field, field+" references a row that does not exist")
	return e
}

type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level failure of a single write
// attempt. A write is rejected whole: either all validators pass and the row
// is persisted, or nothing is written.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(code, field, message string) {
	e.Fields = append(e.Fields, FieldError{Code: code, Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// BalanceFloor is the documented minimum for the cash ledger running balance.
var BalanceFloor = decimal.RequireFromString("-9999999999.99")

func (e *ValidationError) requireNonNegative(field string, v decimal.Decimal) {
	if v.IsNegative() {
		e.add(ErrCodeMinValue, field, fmt.Sprintf("%s must not be negative", field))
	}
}

func (e *ValidationError) requireMin(field string, v decimal.Decimal, min decimal.Decimal) {
	if v.LessThan(min) {
		e.add(ErrCodeMinValue, field, fmt.Sprintf("%s must be >= %s", field, min))
	}
}

func (e *ValidationError) requireIntRange(field string, v, min, max int) {
	if v < min {
		e.add(ErrCodeMinValue, field, fmt.Sprintf("%s must be >= %d", field, min))
	}
	if v > max {
		e.add(ErrCodeMaxValue, field, fmt.Sprintf("%s must be <= %d", field, max))
	}
}

func (e *ValidationError) requireNonEmpty(field, v string) {
	if strings.TrimSpace(v) == "" {
		e.add(ErrCodeRequired, field, field+" is required")
	}
}
