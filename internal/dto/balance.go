package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// SetInitialBalanceRequest records the opening balance of an account in one currency.
// Amount is signed: positive increases the account's normal balance.
type SetInitialBalanceRequest struct {
	AccountID     string          `json:"accountID" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currency"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	EffectiveDate *time.Time      `json:"effectiveDate"`
}

// InitialBalanceResponse defines the data returned for an opening balance.
type InitialBalanceResponse struct {
	InitialBalanceID string          `json:"initialBalanceID"`
	AccountID        string          `json:"accountID"`
	CurrencyCode     string          `json:"currencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	EffectiveDate    *time.Time      `json:"effectiveDate,omitempty"`
}

// ToInitialBalanceResponse converts a domain.InitialBalance to its DTO.
func ToInitialBalanceResponse(b *domain.InitialBalance) InitialBalanceResponse {
	resp := InitialBalanceResponse{
		InitialBalanceID: b.InitialBalanceID,
		AccountID:        b.AccountID,
		CurrencyCode:     b.CurrencyCode,
		Amount:           b.Amount,
	}
	if !b.EffectiveDate.IsZero() {
		d := b.EffectiveDate
		resp.EffectiveDate = &d
	}
	return resp
}

// ToInitialBalanceResponses converts a slice of opening balances.
func ToInitialBalanceResponses(balances []domain.InitialBalance) []InitialBalanceResponse {
	res := make([]InitialBalanceResponse, len(balances))
	for i := range balances {
		res[i] = ToInitialBalanceResponse(&balances[i])
	}
	return res
}

// AccountBalanceResponse is the balance of one account, per currency and converted.
type AccountBalanceResponse struct {
	AccountID string                   `json:"accountID"`
	Code      string                   `json:"code"`
	Name      string                   `json:"name"`
	IsCash    bool                     `json:"isCash"`
	Segments  []domain.BalanceSnapshot `json:"segments"`
	Converted decimal.Decimal          `json:"converted"`
}

// BalancesResponse lists account balances at a date in the reporting currency.
type BalancesResponse struct {
	AsOf      time.Time                `json:"asOf"`
	Currency  string                   `json:"currency"`
	Accounts  []AccountBalanceResponse `json:"accounts"`
	CashTotal decimal.Decimal          `json:"cashTotal"`
}
