package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateInvoiceTotals_SingleLine(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Consulting", UnitPrice: decimal.NewFromInt(3600), Quantity: decimal.NewFromInt(1)},
	}

	totals, err := CalculateInvoiceTotals(lines, decimal.NewFromInt(18))
	require.NoError(t, err)

	assert.Equal(t, "3600.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "648.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "4248.00", totals.Total.StringFixed(2))
}

func TestCalculateInvoiceTotals_MultipleLines(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Consulting", UnitPrice: decimal.NewFromInt(3600), Quantity: decimal.NewFromInt(1)},
		{Description: "Workshop", UnitPrice: decimal.NewFromInt(1500), Quantity: decimal.NewFromInt(2)},
	}

	totals, err := CalculateInvoiceTotals(lines, decimal.NewFromInt(18))
	require.NoError(t, err)

	assert.Equal(t, "6600.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1188.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "7788.00", totals.Total.StringFixed(2))
}

func TestCalculateInvoiceTotals_Rounding(t *testing.T) {
	lines := []InvoiceLine{
		{UnitPrice: decimal.RequireFromString("0.335"), Quantity: decimal.NewFromInt(3)},
	}

	totals, err := CalculateInvoiceTotals(lines, decimal.RequireFromString("7.5"))
	require.NoError(t, err)

	assert.Equal(t, "1.01", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.08", totals.Tax.StringFixed(2))
	assert.Equal(t, "1.09", totals.Total.StringFixed(2))
}

func TestCalculateInvoiceTotals_Invalid(t *testing.T) {
	_, err := CalculateInvoiceTotals(nil, decimal.NewFromInt(-1))
	assert.Error(t, err)

	_, err = CalculateInvoiceTotals([]InvoiceLine{{UnitPrice: decimal.NewFromInt(5), Quantity: decimal.Zero}}, decimal.Zero)
	assert.ErrorContains(t, err, "quantity")

	_, err = CalculateInvoiceTotals([]InvoiceLine{{UnitPrice: decimal.NewFromInt(-5), Quantity: decimal.NewFromInt(1)}}, decimal.Zero)
	assert.ErrorContains(t, err, "unit price")
}

func TestCalculateInvoiceTotals_Empty(t *testing.T) {
	totals, err := CalculateInvoiceTotals(nil, decimal.NewFromInt(18))
	require.NoError(t, err)
	assert.True(t, totals.Total.IsZero())
}
