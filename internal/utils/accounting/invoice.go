package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceLine is a single priced item on an invoice.
type InvoiceLine struct {
	Description string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
}

// InvoiceTotals are the computed totals of an invoice.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateInvoiceTotals prices the lines and applies taxRatePercent to the subtotal.
// The subtotal never includes tax.
func CalculateInvoiceTotals(lines []InvoiceLine, taxRatePercent decimal.Decimal) (InvoiceTotals, error) {
	if taxRatePercent.IsNegative() {
		return InvoiceTotals{}, fmt.Errorf("tax rate must not be negative: %s", taxRatePercent.String())
	}

	subtotal := decimal.Zero
	for i, line := range lines {
		if line.UnitPrice.IsNegative() {
			return InvoiceTotals{}, fmt.Errorf("line %d: unit price must not be negative", i+1)
		}
		if !line.Quantity.IsPositive() {
			return InvoiceTotals{}, fmt.Errorf("line %d: quantity must be positive", i+1)
		}
		subtotal = subtotal.Add(RoundMoney(line.UnitPrice.Mul(line.Quantity)))
	}

	tax := RoundMoney(subtotal.Mul(taxRatePercent).Div(hundred))
	return InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}
