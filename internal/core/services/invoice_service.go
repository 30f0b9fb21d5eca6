package services

import (
	"context"
	"fmt"

	"github.com/vickinc/eazybizy/internal/apperrors"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

type invoiceService struct {
	BaseService
}

// NewInvoiceService creates the invoice totals calculator.
func NewInvoiceService(opts ...Option) portssvc.InvoiceSvc {
	svc := &invoiceService{}
	svc.apply(opts)
	return svc
}

var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

func (s *invoiceService) CalculateTotals(ctx context.Context, req dto.InvoiceTotalsRequest) (*dto.InvoiceTotalsResponse, error) {
	lines := make([]accounting.InvoiceLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = accounting.InvoiceLine{Description: l.Description, UnitPrice: l.UnitPrice, Quantity: l.Quantity}
	}
	totals, err := accounting.CalculateInvoiceTotals(lines, req.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	s.LogDebug(ctx, "Invoice totals calculated", "lines", len(lines), "total", totals.Total.String())
	return &dto.InvoiceTotalsResponse{
		Currency: req.Currency,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}
