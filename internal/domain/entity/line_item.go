package entity

import "github.com/shopspring/decimal"

// LineItem is one billable row of an invoice. Items keep the order the
// user entered them in (Position is the 0-based index within the invoice).
type LineItem struct {
	ID          string
	InvoiceID   string
	Position    int
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}
