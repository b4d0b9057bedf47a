package money

import (
	"github.com/shopspring/decimal"
)

// Amounts are held as exact decimals end to end. Intermediate math is
// unrounded; only the tax and grand total of a document are rounded to
// cents, so a stored document always satisfies
// total == subtotal - discount + tax at 2 decimal places.

// RoundPlaces is the scale of stored monetary amounts
const RoundPlaces = 2

// Totals is the computed financial summary of a document
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	Total         decimal.Decimal `json:"total"`
}

// LineInput is the per line contribution to document totals
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Taxable   bool
}

// LineTotal returns quantity times unit price, unrounded
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// ComputeTotals derives document totals from line items, a flat discount
// amount and a percentage tax rate. The discount applies against the
// taxable portion first; tax is charged on the taxable remainder and is
// never negative. A discount larger than the subtotal yields a zero
// total rather than a credit.
func ComputeTotals(lines []LineInput, discount decimal.Decimal, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	taxableSubtotal := decimal.Zero

	for _, line := range lines {
		lt := LineTotal(line.Quantity, line.UnitPrice)
		subtotal = subtotal.Add(lt)
		if line.Taxable {
			taxableSubtotal = taxableSubtotal.Add(lt)
		}
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	taxBase := taxableSubtotal.Sub(discount)
	if taxBase.IsNegative() {
		taxBase = decimal.Zero
	}

	tax := taxBase.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(RoundPlaces)

	total := subtotal.Sub(discount).Add(tax).Round(RoundPlaces)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal:      subtotal,
		DiscountTotal: discount,
		TaxTotal:      tax,
		Total:         total,
	}
}
