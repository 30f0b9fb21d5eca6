package models

import "github.com/shopspring/decimal"

// Transaction represents a single line of a journal, affecting one account.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"` // positive
	TransactionType string          `db:"transaction_type"`
	CurrencyCode    string          `db:"currency_code"`
	Notes           string          `db:"notes"`
	AuditFields
}
