package repositories

import (
	"context"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal of a company, without lines.
	FindJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journals using token-based pagination.
	// It returns the journals, a token for the next page, and an error.
	ListJournals(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)

	// FindJournalsUpTo returns every journal dated on or before asOf with its
	// transaction lines, reversed originals and their reversals included.
	FindJournalsUpTo(ctx context.Context, companyID string, asOf time.Time) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal and its transactions in one database transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// SaveReversal persists a reversal journal and marks the original as
	// reversed, linking both, in one database transaction.
	SaveReversal(ctx context.Context, original domain.Journal, reversal domain.Journal, transactions []domain.Transaction) error

	// SaveSupersede marks the original as reversed, inserts its reversal and
	// inserts the replacement journal, all in one database transaction.
	// Nothing is persisted when any step fails.
	SaveSupersede(ctx context.Context, original domain.Journal, reversal domain.Journal, reversalTxns []domain.Transaction, replacement domain.Journal, replacementTxns []domain.Transaction) error

	// UpdateJournal updates the description of a journal. Amounts are never updated.
	UpdateJournal(ctx context.Context, journal domain.Journal) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves all transactions associated with a single journal ID.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// FindTransactionsByJournalIDs retrieves transactions for multiple journal IDs, grouped by journal ID.
	FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	TransactionReader
}
