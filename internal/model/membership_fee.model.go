package model

import "time"

const (
	MembershipYearMin = 1900
	MembershipYearMax = 3000
)

// MonthNames maps the enumerated months (1-12) to display labels.
var MonthNames = map[int]string{
	1: "January", 2: "February", 3: "March", 4: "April",
	5: "May", 6: "June", 7: "July", 8: "August",
	9: "September", 10: "October", 11: "November", 12: "December",
}

// MembershipFeeRecord marks one assignee's monthly fee as logged. At most one
// record may exist per (assignee, month, year).
type MembershipFeeRecord struct {
	ID           int64     `json:"id"`
	AssigneeName string    `json:"assignee_name"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MembershipFeeCreateRequest struct {
	AssigneeName string `json:"assignee_name"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

func (p MembershipFeeCreateRequest) Validate() error {
	e := &ValidationError{}
	e.requireNonEmpty("assignee_name", p.AssigneeName)
	if len(p.AssigneeName) > 120 {
		e.add(ErrCodeMaxValue, "assignee_name", "assignee_name must be at most 120 characters")
	}
	e.requireIntRange("month", p.Month, 1, 12)
	e.requireIntRange("year", p.Year, MembershipYearMin, MembershipYearMax)
	return e.orNil()
}

type MembershipFeeFilter struct {
	AssigneeName *string
	Month        *int
	Year         *int
	Limit        int
	Offset       int
	Desc         bool // order by (year, month)
}
