package repositories

import (
	"context"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// RateRepositoryFacade defines persistence for a company's currency rate table.
type RateRepositoryFacade interface {
	// ListRates returns, per currency, the latest rate effective on or before asOf.
	ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error)

	// SaveRate inserts a rate or replaces the one with the same code and effective date.
	SaveRate(ctx context.Context, rate domain.CurrencyRate) error
}
