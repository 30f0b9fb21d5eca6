package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitialBalance is the opening balance of an account in one currency.
// Amount is signed like a LedgerEntry. A zero EffectiveDate means the
// balance predates all ledger activity.
type InitialBalance struct {
	InitialBalanceID string          `json:"initialBalanceID"`
	CompanyID        string          `json:"companyID"`
	AccountID        string          `json:"accountID"`
	CurrencyCode     string          `json:"currencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	AuditFields
}

// BalanceSnapshot is a derived balance of one account in one currency.
type BalanceSnapshot struct {
	AccountID      string          `json:"accountID"`
	AsOfDate       time.Time       `json:"asOfDate"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	MovementsSum   decimal.Decimal `json:"movementsSum"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
	CurrencyCode   string          `json:"currencyCode"`
}
