package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// SourceKind records where a posted movement came from.
type SourceKind string

const (
	SourceManual         SourceKind = "MANUAL"
	SourceTransaction    SourceKind = "TRANSACTION"
	SourceInvoicePayment SourceKind = "INVOICE_PAYMENT"
	SourceReversal       SourceKind = "REVERSAL"
)

// IsValid reports whether k is a known source kind.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceManual, SourceTransaction, SourceInvoicePayment, SourceReversal:
		return true
	}
	return false
}

// Journal represents a single, balanced financial event composed of multiple transactions.
// A posted journal's amounts are never edited; it is reversed and, if needed, superseded.
type Journal struct {
	JournalID          string          `json:"journalID"`
	CompanyID          string          `json:"companyID"`
	JournalDate        time.Time       `json:"journalDate"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	SourceKind         SourceKind      `json:"sourceKind"`
	Status             JournalStatus   `json:"status"`
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Transactions       []Transaction   `json:"transactions,omitempty"`
	AuditFields
}
