package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a normalized, immutable movement on one account.
// Amount is signed: positive increases the account's normal balance.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	JournalID     string          `json:"journalID"`
	CompanyID     string          `json:"companyID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	EntryDate     time.Time       `json:"entryDate"`
	Category      string          `json:"category"`
	AccountType   AccountType     `json:"accountType"`
	SourceKind    SourceKind      `json:"sourceKind"`
	LinkedEntryID *string         `json:"linkedEntryID,omitempty"`
	PostedAt      time.Time       `json:"postedAt"`
}
