// Package admin holds the declarative presentation configuration for every
// entity: which columns the list view shows, which fields are searchable or
// filterable, and how edit forms group fields into tabs. It computes nothing;
// the UI reads these descriptors and renders generated views.
package admin

import "github.com/hftecno/treasury/internal/model"

// Fieldset is one tab of an edit form.
type Fieldset struct {
	Label  string     `json:"label"`
	Fields [][]string `json:"fields"` // inner slices render on one row
}

// Choice is one enumerated value for a select field.
type Choice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type Descriptor struct {
	Entity         string              `json:"entity"`
	Label          string              `json:"label"`
	ListDisplay    []string            `json:"list_display"`
	SearchFields   []string            `json:"search_fields"`
	ListFilter     []string            `json:"list_filter"`
	DateHierarchy  string              `json:"date_hierarchy,omitempty"`
	Ordering       []string            `json:"ordering"`
	Fieldsets      []Fieldset          `json:"fieldsets"`
	ReadonlyFields []string            `json:"readonly_fields"`
	FieldChoices   map[string][]Choice `json:"field_choices,omitempty"`
}

func monthChoices() []Choice {
	choices := make([]Choice, 0, len(model.MonthNames))
	for m := 1; m <= 12; m++ {
		choices = append(choices, Choice{Value: m, Label: model.MonthNames[m]})
	}
	return choices
}

var metadataFieldset = Fieldset{Label: "Metadata", Fields: [][]string{{"created_at", "updated_at"}}}

func catalogDescriptor(entity, label string) Descriptor {
	return Descriptor{
		Entity:       entity,
		Label:        label,
		ListDisplay:  []string{"name"},
		SearchFields: []string{"name"},
		Ordering:     []string{"name"},
		Fieldsets: []Fieldset{
			{Label: label, Fields: [][]string{{"name"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	}
}

// Descriptors lists every entity the back office exposes, in menu order.
var Descriptors = []Descriptor{
	catalogDescriptor("due_status", "Due Statuses"),
	catalogDescriptor("expense_concept", "Expense Concepts"),
	catalogDescriptor("payment_situation", "Payment Situations"),
	catalogDescriptor("location_description", "Location Descriptions"),
	catalogDescriptor("currency_status", "Currency Statuses"),
	catalogDescriptor("mailbox_withdrawal_role", "Mailbox Withdrawal Roles"),
	catalogDescriptor("delivered_to_role", "Delivered-To Roles"),
	{
		Entity:        "cash_ledger_entry",
		Label:         "Cash Ledger",
		ListDisplay:   []string{"date", "description", "inflow", "outflow", "balance"},
		SearchFields:  []string{"description"},
		ListFilter:    []string{"date"},
		DateHierarchy: "date",
		Ordering:      []string{"-date", "-id"},
		Fieldsets: []Fieldset{
			{Label: "Movement", Fields: [][]string{{"date", "description"}}},
			{Label: "Amounts", Fields: [][]string{{"inflow", "outflow", "balance"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:        "payment_provider_entry",
		Label:         "Provider Account",
		ListDisplay:   []string{"date", "inflow", "outflow", "interest", "balance"},
		ListFilter:    []string{"date"},
		DateHierarchy: "date",
		Ordering:      []string{"-date", "-id"},
		Fieldsets: []Fieldset{
			{Label: "Movement", Fields: [][]string{{"date"}}},
			{Label: "Amounts", Fields: [][]string{{"inflow", "outflow", "interest", "balance"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:        "due_item",
		Label:         "Due Items",
		ListDisplay:   []string{"due_date", "concept", "location", "amount", "status", "situation", "date"},
		SearchFields:  []string{"note"},
		ListFilter:    []string{"due_date", "date", "concept", "status", "situation", "location"},
		DateHierarchy: "due_date",
		Ordering:      []string{"-due_date", "concept"},
		Fieldsets: []Fieldset{
			{Label: "Item", Fields: [][]string{{"date", "due_date"}, {"concept_id", "location_id"}}},
			{Label: "State", Fields: [][]string{{"status_id", "situation_id"}}},
			{Label: "Amount and notes", Fields: [][]string{{"amount"}, {"note"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:        "foreign_currency_entry",
		Label:         "Foreign Currency",
		ListDisplay:   []string{"date", "code", "inflow", "purchase_foreign", "purchase_local", "outflow_foreign", "rate_of_day", "sale_local", "balance_local", "status"},
		ListFilter:    []string{"date", "code", "status"},
		DateHierarchy: "date",
		Ordering:      []string{"-date", "-id"},
		Fieldsets: []Fieldset{
			{Label: "Entry", Fields: [][]string{{"date", "code"}, {"status_id"}}},
			{Label: "Movements", Fields: [][]string{
				{"inflow", "outflow_foreign"},
				{"purchase_foreign", "purchase_local"},
				{"sale_local", "rate_of_day"},
				{"balance_local"},
			}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:       "envelope_assignment",
		Label:        "Envelope Assignments",
		ListDisplay:  []string{"envelope_number", "assignee_name", "created_at"},
		SearchFields: []string{"assignee_name"},
		Ordering:     []string{"envelope_number"},
		Fieldsets: []Fieldset{
			{Label: "Assignment", Fields: [][]string{{"envelope_number", "assignee_name"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:        "pledge_commitment",
		Label:         "Pledge Commitments",
		ListDisplay:   []string{"date", "envelope_number", "assignee_name", "amount", "balance"},
		SearchFields:  []string{"assignee_name"},
		ListFilter:    []string{"date"},
		DateHierarchy: "date",
		Ordering:      []string{"-date", "-id"},
		Fieldsets: []Fieldset{
			{Label: "Commitment", Fields: [][]string{{"date", "assignment_id"}}},
			{Label: "Amounts", Fields: [][]string{{"amount", "balance"}}},
			// envelope_number and assignee_name come from the assignment,
			// shown read-only, never stored on the commitment.
			{Label: "Reference", Fields: [][]string{{"envelope_number", "assignee_name"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"envelope_number", "assignee_name", "created_at", "updated_at"},
	},
	{
		Entity:        "donation_entry",
		Label:         "Donations",
		ListDisplay:   []string{"date", "withdrawal_role", "delivered_to", "amount", "balance", "concept"},
		SearchFields:  []string{"concept"},
		ListFilter:    []string{"date", "withdrawal_role", "delivered_to"},
		DateHierarchy: "date",
		Ordering:      []string{"-date", "-id"},
		Fieldsets: []Fieldset{
			{Label: "Entry", Fields: [][]string{{"date"}, {"withdrawal_role_id", "delivered_to_id"}}},
			{Label: "Amounts", Fields: [][]string{{"amount", "balance"}, {"concept"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
	},
	{
		Entity:       "membership_fee_record",
		Label:        "Membership Fees",
		ListDisplay:  []string{"year", "month", "assignee_name", "created_at"},
		SearchFields: []string{"assignee_name"},
		ListFilter:   []string{"year", "month"},
		Ordering:     []string{"-year", "-month", "assignee_name"},
		Fieldsets: []Fieldset{
			{Label: "Fee", Fields: [][]string{{"year", "month"}, {"assignee_name"}}},
			metadataFieldset,
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
		FieldChoices:   map[string][]Choice{"month": monthChoices()},
	},
}

// Find returns the descriptor for an entity, or nil.
func Find(entity string) *Descriptor {
	for i := range Descriptors {
		if Descriptors[i].Entity == entity {
			return &Descriptors[i]
		}
	}
	return nil
}
