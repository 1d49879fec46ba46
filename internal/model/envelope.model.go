package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EnvelopeNumberMin = 1
	EnvelopeNumberMax = 50
)

// EnvelopeAssignment maps one numbered pledge envelope to one assignee.
// Envelope numbers are unique; an assignment cannot be deleted while pledge
// commitments reference it.
type EnvelopeAssignment struct {
	ID             int64     `json:"id"`
	EnvelopeNumber int       `json:"envelope_number"`
	AssigneeName   string    `json:"assignee_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EnvelopeAssignmentCreateRequest struct {
	EnvelopeNumber int    `json:"envelope_number"`
	AssigneeName   string `json:"assignee_name"`
}

func (p EnvelopeAssignmentCreateRequest) Validate() error {
	e := &ValidationError{}
	e.requireIntRange("envelope_number", p.EnvelopeNumber, EnvelopeNumberMin, EnvelopeNumberMax)
	e.requireNonEmpty("assignee_name", p.AssigneeName)
	if len(p.AssigneeName) > 120 {
		e.add(ErrCodeMaxValue, "assignee_name", "assignee_name must be at most 120 characters")
	}
	return e.orNil()
}

// PledgeCommitment is one dated pledge against an envelope assignment.
// EnvelopeNumber and AssigneeName are display fields resolved from the
// assignment on read; they are never stored on the commitment row.
type PledgeCommitment struct {
	ID             int64           `json:"id"`
	Date           time.Time       `json:"date"`
	AssignmentID   int64           `json:"assignment_id"`
	EnvelopeNumber int             `json:"envelope_number"`
	AssigneeName   string          `json:"assignee_name"`
	Amount         decimal.Decimal `json:"amount"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PledgeCommitmentCreateRequest struct {
	Date         time.Time       `json:"date"`
	AssignmentID int64           `json:"assignment_id"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
}

func (p PledgeCommitmentCreateRequest) Validate() error {
	e := &ValidationError{}
	if p.Date.IsZero() {
		e.add(ErrCodeRequired, "date", "date is required")
	}
	if p.AssignmentID == 0 {
		e.add(ErrCodeRequired, "assignment_id", "assignment_id is required")
	}
	e.requireNonNegative("amount", p.Amount)
	return e.orNil()
}

type PledgeCommitmentFilter struct {
	AssignmentID *int64
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
	Desc         bool
}
