package dto

import "github.com/shopspring/decimal"

// InvoiceLineRequest is one priced line of an invoice.
type InvoiceLineRequest struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// InvoiceTotalsRequest asks for the totals of a draft invoice.
// TaxRate is a percentage, e.g. 18 for 18%.
type InvoiceTotalsRequest struct {
	Currency string               `json:"currency" binding:"omitempty,currency"`
	TaxRate  decimal.Decimal      `json:"taxRate"`
	Lines    []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// InvoiceTotalsResponse carries subtotal (tax excluded), tax and total.
type InvoiceTotalsResponse struct {
	Currency string          `json:"currency,omitempty"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
