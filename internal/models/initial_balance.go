package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// InitialBalance is the opening balance of an account in one currency.
type InitialBalance struct {
	InitialBalanceID string          `db:"initial_balance_id"`
	CompanyID        string          `db:"company_id"`
	AccountID        string          `db:"account_id"`
	CurrencyCode     string          `db:"currency_code"`
	Amount           decimal.Decimal `db:"amount"`
	EffectiveDate    sql.NullTime    `db:"effective_date"` // NULL applies from the start of the ledger
	AuditFields
}
