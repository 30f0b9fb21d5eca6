package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

func TestInvoiceService_CalculateTotals(t *testing.T) {
	svc := services.NewInvoiceService()

	resp, err := svc.CalculateTotals(context.Background(), dto.InvoiceTotalsRequest{
		Currency: "USD",
		TaxRate:  dec("18"),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Consulting", UnitPrice: dec("3600"), Quantity: dec("1")},
			{Description: "Support", UnitPrice: dec("1500"), Quantity: dec("2")},
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(dec("6600")), resp.Subtotal.String())
	assert.True(t, resp.Tax.Equal(dec("1188")), resp.Tax.String())
	assert.True(t, resp.Total.Equal(dec("7788")), resp.Total.String())
	assert.Equal(t, "USD", resp.Currency)
}

func TestInvoiceService_InvalidLine(t *testing.T) {
	svc := services.NewInvoiceService()

	_, err := svc.CalculateTotals(context.Background(), dto.InvoiceTotalsRequest{
		TaxRate: dec("18"),
		Lines:   []dto.InvoiceLineRequest{{UnitPrice: dec("10"), Quantity: dec("0")}},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
