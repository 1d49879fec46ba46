package model

import "time"

// CatalogKind identifies one of the lookup vocabularies. Each kind is its own
// table; all share the same shape (a unique name) and the same protect-on-
// delete policy while transactional rows reference them.
type CatalogKind string

const (
	CatalogDueStatus             CatalogKind = "due_status"
	CatalogExpenseConcept        CatalogKind = "expense_concept"
	CatalogPaymentSituation      CatalogKind = "payment_situation"
	CatalogLocationDescription   CatalogKind = "location_description"
	CatalogCurrencyStatus        CatalogKind = "currency_status"
	CatalogMailboxWithdrawalRole CatalogKind = "mailbox_withdrawal_role"
	CatalogDeliveredToRole       CatalogKind = "delivered_to_role"
)

// CatalogKinds lists every lookup vocabulary in display order.
var CatalogKinds = []CatalogKind{
	CatalogDueStatus,
	CatalogExpenseConcept,
	CatalogPaymentSituation,
	CatalogLocationDescription,
	CatalogCurrencyStatus,
	CatalogMailboxWithdrawalRole,
	CatalogDeliveredToRole,
}

func (k CatalogKind) Valid() bool {
	for _, kind := range CatalogKinds {
		if k == kind {
			return true
		}
	}
	return false
}

type CatalogEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CatalogCreateRequest struct {
	Name string `json:"name"`
}

func (p CatalogCreateRequest) Validate() error {
	e := &ValidationError{}
	e.requireNonEmpty("name", p.Name)
	if len(p.Name) > 100 {
		e.add(ErrCodeMaxValue, "name", "name must be at most 100 characters")
	}
	return e.orNil()
}
