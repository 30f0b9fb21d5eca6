package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// ReportingService generates financial statements. Input errors are
// returned as errors; data quality findings travel in each result's
// validation list.
type ReportingService interface {
	ProfitAndLoss(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.ProfitLossData], error)
	BalanceSheet(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.BalanceSheetData], error)
	CashFlow(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.CashFlowData], error)
	EquityChanges(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.EquityChangesData], error)

	// Bundle builds all statements concurrently and reconciles them.
	Bundle(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementBundle, error)
}
