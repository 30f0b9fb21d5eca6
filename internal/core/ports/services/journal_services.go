package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with its transaction lines.
	GetJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journals of a company.
	ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data.
// Posted amounts are never edited in place.
type JournalWriterSvc interface {
	// CreateJournal posts a new balanced journal.
	CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)

	// UpdateJournal changes the description of a journal.
	UpdateJournal(ctx context.Context, companyID, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.Journal, error)

	// ReverseJournal posts a reversal journal for an existing journal.
	ReverseJournal(ctx context.Context, companyID, journalID, userID string) (*domain.Journal, error)

	// SupersedeJournal reverses a journal and posts its replacement.
	SupersedeJournal(ctx context.Context, companyID, journalID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, *domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
