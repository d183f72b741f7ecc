package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/billforge/billforge-api/internal/domain/entity"
)

func item(qty, rate string) entity.LineItem {
	return entity.LineItem{
		Quantity: decimal.RequireFromString(qty),
		Rate:     decimal.RequireFromString(rate),
	}
}

func TestComputeTotals_SingleItemWithTax(t *testing.T) {
	items := []entity.LineItem{item("2", "500")}
	got := ComputeTotals(items, decimal.NewFromInt(10))

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(decimal.NewFromInt(100)), "taxAmount = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1100)), "total = %s", got.Total)
}

func TestComputeTotals_DecimalRatesZeroTax(t *testing.T) {
	items := []entity.LineItem{item("1", "250.50"), item("3", "99.99")}
	got := ComputeTotals(items, decimal.Zero)

	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("549.97")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxAmount.IsZero(), "taxAmount = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("549.97")), "total = %s", got.Total)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	got := ComputeTotals(nil, decimal.NewFromInt(19))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

// The subtotal is a sum, so item order must not change it.
func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := []entity.LineItem{item("1", "250.50"), item("3", "99.99"), item("0.5", "80")}
	b := []entity.LineItem{a[2], a[0], a[1]}

	ta := ComputeTotals(a, decimal.NewFromInt(7))
	tb := ComputeTotals(b, decimal.NewFromInt(7))

	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.Total.Equal(tb.Total))
}

func TestComputeTotals_TotalIsSubtotalPlusTax(t *testing.T) {
	items := []entity.LineItem{item("4", "123.45"), item("2", "10")}
	for _, rate := range []string{"0", "5", "18", "19.5", "100"} {
		got := ComputeTotals(items, decimal.RequireFromString(rate))
		assert.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)), "rate %s", rate)
		assert.True(t, got.TaxAmount.Equal(got.Subtotal.Mul(decimal.RequireFromString(rate)).Div(decimal.NewFromInt(100))), "rate %s", rate)
	}
}

// The tax division is an exponent shift, so even rates with many decimal
// places yield an exact tax amount and the additive identity holds with
// no rounding drift.
func TestComputeTotals_HighPrecisionRateStaysExact(t *testing.T) {
	items := []entity.LineItem{item("0.333333", "123.456789")}
	rate := decimal.RequireFromString("19.123456789")

	got := ComputeTotals(items, rate)

	exactTax := got.Subtotal.Mul(rate).Shift(-2)
	assert.True(t, got.TaxAmount.Equal(exactTax), "taxAmount = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)), "total = %s", got.Total)
}

func TestComputeTotals_NegativeInputsClampToZero(t *testing.T) {
	items := []entity.LineItem{item("-2", "500"), item("1", "-80"), item("2", "50")}
	got := ComputeTotals(items, decimal.NewFromInt(-10))

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(100)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.Equal(decimal.NewFromInt(100)))
}

func TestLineAmount(t *testing.T) {
	assert.True(t, LineAmount(item("3", "99.99")).Equal(decimal.RequireFromString("299.97")))
	assert.True(t, LineAmount(entity.LineItem{}).IsZero())
}

func TestApply_RewritesDerivedFieldsTogether(t *testing.T) {
	inv := &entity.Invoice{
		Items:   []entity.LineItem{item("2", "500")},
		TaxRate: decimal.NewFromInt(10),
		// Stale client-supplied values that must be discarded.
		Subtotal:  decimal.NewFromInt(1),
		TaxAmount: decimal.NewFromInt(2),
		Total:     decimal.NewFromInt(3),
	}
	Apply(inv)

	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, inv.TaxAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(1100)))
}
