package services

import (
	"context"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// RateSvcFacade manages the company's currency rate table.
type RateSvcFacade interface {
	// ListRates returns the rate table effective at asOf.
	ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error)

	// UpsertRate stores a rate. The resulting table must stay valid.
	UpsertRate(ctx context.Context, companyID string, req dto.UpsertRateRequest, userID string) (*domain.CurrencyRate, error)
}
