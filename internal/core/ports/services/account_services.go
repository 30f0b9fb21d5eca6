package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account of a company.
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts of a company.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's descriptive fields.
	UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error

	// SeedDefaultChart creates the default chart of accounts for the company's
	// accounting mode, skipping codes that already exist.
	SeedDefaultChart(ctx context.Context, companyID, userID string) (*dto.SeedAccountsResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
