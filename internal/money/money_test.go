package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d("299.97").Equal(LineTotal(d("3"), d("99.99"))))
	assert.True(t, d("0").Equal(LineTotal(d("0"), d("42.50"))))
	assert.True(t, d("1.125").Equal(LineTotal(d("0.75"), d("1.50"))))
}

func TestComputeTotals_MixedTaxability(t *testing.T) {
	lines := []LineInput{
		{Quantity: d("2"), UnitPrice: d("100.00"), Taxable: true},
		{Quantity: d("1"), UnitPrice: d("50.00"), Taxable: false},
	}

	totals := ComputeTotals(lines, d("20.00"), d("8.25"))

	assert.True(t, d("250.00").Equal(totals.Subtotal))
	assert.True(t, d("20.00").Equal(totals.DiscountTotal))
	// tax base is 200 - 20 = 180
	assert.True(t, d("14.85").Equal(totals.TaxTotal))
	assert.True(t, d("244.85").Equal(totals.Total))
}

func TestComputeTotals_DiscountExceedsTaxable(t *testing.T) {
	lines := []LineInput{
		{Quantity: d("1"), UnitPrice: d("30.00"), Taxable: true},
		{Quantity: d("1"), UnitPrice: d("100.00"), Taxable: false},
	}

	totals := ComputeTotals(lines, d("50.00"), d("10"))

	// taxable 30 - discount 50 clamps the tax base to zero
	assert.True(t, totals.TaxTotal.IsZero())
	assert.True(t, d("80.00").Equal(totals.Total))
}

func TestComputeTotals_DiscountExceedsSubtotal(t *testing.T) {
	lines := []LineInput{
		{Quantity: d("1"), UnitPrice: d("40.00"), Taxable: true},
	}

	totals := ComputeTotals(lines, d("100.00"), d("10"))

	// discount is clamped to the subtotal so the total floors at zero
	assert.True(t, d("40.00").Equal(totals.DiscountTotal))
	assert.True(t, totals.TaxTotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_NegativeDiscountIgnored(t *testing.T) {
	lines := []LineInput{
		{Quantity: d("1"), UnitPrice: d("10.00"), Taxable: true},
	}

	totals := ComputeTotals(lines, d("-5.00"), d("0"))

	assert.True(t, totals.DiscountTotal.IsZero())
	assert.True(t, d("10.00").Equal(totals.Total))
}

func TestComputeTotals_RoundingAtTaxOnly(t *testing.T) {
	// 3 * 0.333 = 0.999 stays unrounded in the subtotal; tax rounds
	lines := []LineInput{
		{Quantity: d("3"), UnitPrice: d("0.333"), Taxable: true},
	}

	totals := ComputeTotals(lines, decimal.Zero, d("7"))

	assert.True(t, d("0.999").Equal(totals.Subtotal))
	assert.True(t, d("0.07").Equal(totals.TaxTotal))
	assert.True(t, d("1.07").Equal(totals.Total))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil, decimal.Zero, d("8.25"))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}
