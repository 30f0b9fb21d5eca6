package repositories

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// PeriodRepositoryFacade defines persistence for accounting periods.
type PeriodRepositoryFacade interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.Period) error

	// FindPeriodByID retrieves a period of a company.
	FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error)

	// ListPeriods returns all periods of a company ordered by start date.
	ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error)

	// UpdatePeriodStatus stores the status and close/reopen stamps of a period.
	UpdatePeriodStatus(ctx context.Context, period domain.Period) error
}
