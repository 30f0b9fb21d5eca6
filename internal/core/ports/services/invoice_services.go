package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/dto"
)

// InvoiceSvc computes invoice figures.
type InvoiceSvc interface {
	CalculateTotals(ctx context.Context, req dto.InvoiceTotalsRequest) (*dto.InvoiceTotalsResponse, error)
}
