package services

import (
	"context"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// BalanceSvcFacade manages opening balances and derives account balances.
type BalanceSvcFacade interface {
	SetInitialBalance(ctx context.Context, companyID string, req dto.SetInitialBalanceRequest, userID string) (*domain.InitialBalance, error)
	ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error)

	// Balances returns every active account's balance at asOf, segmented by
	// currency and converted into the reporting currency.
	Balances(ctx context.Context, companyID string, asOf time.Time, reportingCurrency string) (*dto.BalancesResponse, error)
}
