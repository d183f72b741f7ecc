// Package billing holds the pure invoice arithmetic: line amounts and the
// derived subtotal / tax / grand total. No I/O, no state; callers re-invoke
// ComputeTotals after every change to the items or the tax rate.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/billforge/billforge-api/internal/domain/entity"
)

// Totals are the three derived monetary fields of an invoice. They are
// computed together in a single step and stored unrounded; rounding to two
// digits is a presentation concern of the document renderer.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineAmount returns quantity * rate for one item. Negative quantities or
// rates are treated as zero, matching the lenient form-entry rules.
func LineAmount(item entity.LineItem) decimal.Decimal {
	return clamp(item.Quantity).Mul(clamp(item.Rate))
}

// ComputeTotals derives subtotal, tax amount and grand total from the items
// and the tax rate (percent). It never fails: malformed numeric input has
// already been normalized to zero at the DTO boundary, and negative values
// are clamped here.
func ComputeTotals(items []entity.LineItem, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineAmount(item))
	}
	// Dividing by 100 as an exponent shift keeps the tax amount exact for
	// any rate; no division precision is involved.
	taxAmount := subtotal.Mul(clamp(taxRatePercent)).Shift(-2)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// Apply recomputes the derived fields of inv in place. This is the only
// code path that writes Subtotal, TaxAmount or Total.
func Apply(inv *entity.Invoice) {
	t := ComputeTotals(inv.Items, inv.TaxRate)
	inv.Subtotal = t.Subtotal
	inv.TaxAmount = t.TaxAmount
	inv.Total = t.Total
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
