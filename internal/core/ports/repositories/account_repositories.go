package repositories

import (
	"context"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account of a company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its chart code.
	FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error)

	// ListAccounts returns every account of a company, active or not, ordered by code.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts persists several new accounts atomically.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount updates an existing account's descriptive fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
