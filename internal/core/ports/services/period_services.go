package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// PeriodSvcFacade manages accounting periods and their open/closed state.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, userID string) (*domain.Period, error)
	GetPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error)

	// ClosePeriod moves an open period to closed; closing twice is a conflict.
	ClosePeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error)

	// ReopenPeriod moves a closed period back to open.
	ReopenPeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error)
}
