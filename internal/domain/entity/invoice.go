package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses. Transitions are driven by the caller
// (Draft → Sent → Paid / Overdue); the core only validates membership.
const (
	StatusDraft   = "Draft"
	StatusSent    = "Sent"
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice is a billing record for one client: header data, ordered line
// items and the derived totals. Subtotal, TaxAmount and Total are always
// recomputed together from Items and TaxRate (billing.ComputeTotals);
// they are never mutated independently.
type Invoice struct {
	ID            string
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	ClientCompany string
	ClientAddress string
	IssueDate     time.Time
	DueDate       time.Time
	PaymentTerms  int // days until due
	Status        string
	Items         []LineItem
	Notes         string
	Terms         string
	TaxRate       decimal.Decimal // percent, e.g. 18 for 18%
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
