package dto

import (
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code           string                       `json:"code" binding:"required,max=20"`
	Name           string                       `json:"name" binding:"required"`
	AccountType    domain.AccountType           `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category       string                       `json:"category"`
	Classification domain.AccountClassification `json:"classification" binding:"omitempty,oneof=CURRENT NON_CURRENT NOT_APPLICABLE"`
	Kind           domain.AccountKind           `json:"kind" binding:"omitempty,oneof=GENERAL BANK WALLET"`
	CurrencyCode   string                       `json:"currencyCode" binding:"required,currency"`
	Description    string                       `json:"description"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string                       `json:"accountID"`
	Code           string                       `json:"code"`
	Name           string                       `json:"name"`
	AccountType    domain.AccountType           `json:"accountType"`
	Category       string                       `json:"category"`
	Classification domain.AccountClassification `json:"classification"`
	Kind           domain.AccountKind           `json:"kind"`
	CurrencyCode   string                       `json:"currencyCode"`
	Description    string                       `json:"description"`
	IsActive       bool                         `json:"isActive"`
	CreatedAt      time.Time                    `json:"createdAt"`
	CreatedBy      string                       `json:"createdBy"`
	LastUpdatedAt  time.Time                    `json:"lastUpdatedAt"`
	LastUpdatedBy  string                       `json:"lastUpdatedBy"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Type and currency are fixed once an account exists.
type UpdateAccountRequest struct {
	Name           *string                       `json:"name"`
	Category       *string                       `json:"category"`
	Classification *domain.AccountClassification `json:"classification" binding:"omitempty,oneof=CURRENT NON_CURRENT NOT_APPLICABLE"`
	Description    *string                       `json:"description"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Category:       acc.Category,
		Classification: acc.Classification,
		Kind:           acc.Kind,
		CurrencyCode:   acc.CurrencyCode,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SeedAccountsResponse reports the accounts created from the default chart.
// Codes that already exist are skipped.
type SeedAccountsResponse struct {
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Accounts []AccountResponse `json:"accounts"`
}
