package repositories

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// InitialBalanceRepositoryFacade defines persistence for opening balances.
type InitialBalanceRepositoryFacade interface {
	// SaveInitialBalance inserts or replaces the opening balance of an account in one currency.
	SaveInitialBalance(ctx context.Context, balance domain.InitialBalance) error

	// ListInitialBalances returns all opening balances of a company.
	ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error)
}
