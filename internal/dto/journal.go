package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CreateTransactionRequest is one debit or credit line of a new journal.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	CurrencyCode    string                 `json:"currencyCode" binding:"omitempty,currency"`
	Notes           string                 `json:"notes"`
}

// CreateJournalRequest defines the data needed to post a balanced journal.
type CreateJournalRequest struct {
	Date         time.Time                  `json:"date" binding:"required"`
	Description  string                     `json:"description"`
	CurrencyCode string                     `json:"currencyCode" binding:"required,currency"`
	SourceKind   domain.SourceKind          `json:"sourceKind" binding:"omitempty,oneof=MANUAL TRANSACTION INVOICE_PAYMENT"`
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=2,dive"`
}

// UpdateJournalRequest allows changing descriptive fields only.
// Amounts of a posted journal are changed by superseding it.
type UpdateJournalRequest struct {
	Description *string `json:"description"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit            int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	Date               time.Time             `json:"date"`
	Description        string                `json:"description"`
	CurrencyCode       string                `json:"currencyCode"`
	SourceKind         domain.SourceKind     `json:"sourceKind"`
	Status             domain.JournalStatus  `json:"status"`
	Amount             decimal.Decimal       `json:"amount"`
	OriginalJournalID  *string               `json:"originalJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	Transactions       []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// SupersedeJournalResponse links the reversal and the replacement journal.
type SupersedeJournalResponse struct {
	Reversal    JournalResponse `json:"reversal"`
	Replacement JournalResponse `json:"replacement"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Type:          string(txn.TransactionType),
		CurrencyCode:  txn.CurrencyCode,
		Notes:         txn.Notes,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          j.JournalID,
		Date:               j.JournalDate,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		SourceKind:         j.SourceKind,
		Status:             j.Status,
		Amount:             j.Amount,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
	}
	if len(j.Transactions) > 0 {
		resp.Transactions = ToTransactionResponses(j.Transactions)
	}
	return resp
}

// ToJournalResponses converts a slice of domain.Journal to []JournalResponse.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	responses := make([]JournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToJournalResponse(&journals[i])
	}
	return responses
}
