package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a single line item within a Journal, affecting one account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	JournalID       string          `json:"journalID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"` // always positive
	TransactionType TransactionType `json:"transactionType"`
	CurrencyCode    string          `json:"currencyCode"`
	Notes           string          `json:"notes"`
	AuditFields
}
