package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

const reversalPrefix = "Reversal of Journal: "

var (
	ErrJournalMinEntries    = fmt.Errorf("%w: journal must have at least two transaction entries", apperrors.ErrValidation)
	ErrJournalMinAccounts   = fmt.Errorf("%w: journal must involve at least two different accounts", apperrors.ErrValidation)
	ErrJournalUnbalanced    = fmt.Errorf("%w: journal debits and credits do not balance", apperrors.ErrValidation)
	ErrDescriptionMissing   = fmt.Errorf("%w: journal description must not be empty", apperrors.ErrValidation)
	ErrCurrencyMismatch     = fmt.Errorf("%w: transaction currency does not match journal currency", apperrors.ErrValidation)
	ErrAlreadyReversed      = fmt.Errorf("%w: journal has already been reversed", apperrors.ErrConflict)
	ErrReversalOfReversal   = fmt.Errorf("%w: a reversal journal cannot itself be reversed", apperrors.ErrConflict)
	ErrInactiveAccount      = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	ErrJournalNotReversible = fmt.Errorf("%w: only posted journals can be reversed", apperrors.ErrConflict)
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, periodRepo portsrepo.PeriodRepositoryFacade, opts ...Option) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal validates and posts a balanced journal.
func (s *journalService) CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	journal, txns, err := s.buildJournal(ctx, companyID, req, userID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveJournal(ctx, *journal, txns); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal created", slog.String("journal_id", journal.JournalID), slog.String("company_id", companyID))
	journal.Transactions = txns
	return journal, nil
}

func (s *journalService) buildJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, []domain.Transaction, error) {
	if len(req.Transactions) < 2 {
		return nil, nil, ErrJournalMinEntries
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, nil, ErrDescriptionMissing
	}
	accountSet := make(map[string]bool)
	for _, t := range req.Transactions {
		accountSet[t.AccountID] = true
	}
	if len(accountSet) < 2 {
		return nil, nil, ErrJournalMinAccounts
	}

	sourceKind := req.SourceKind
	if sourceKind == "" {
		sourceKind = domain.SourceManual
	}
	if !sourceKind.IsValid() || sourceKind == domain.SourceReversal {
		return nil, nil, fmt.Errorf("%w: source kind %q cannot be posted directly", apperrors.ErrValidation, sourceKind)
	}

	journalDate := domain.DateOf(req.Date)
	if err := s.ensureOpen(ctx, companyID, journalDate); err != nil {
		return nil, nil, err
	}

	if err := s.checkAccounts(ctx, companyID, accountSet); err != nil {
		return nil, nil, err
	}

	now := s.Now()
	currency := strings.ToUpper(req.CurrencyCode)
	journalID := uuid.NewString()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	txns := make([]domain.Transaction, len(req.Transactions))
	for i, t := range req.Transactions {
		lineCurrency := strings.ToUpper(t.CurrencyCode)
		if lineCurrency == "" {
			lineCurrency = currency
		}
		if lineCurrency != currency {
			return nil, nil, fmt.Errorf("%w: line %d is in %s, journal is in %s", ErrCurrencyMismatch, i+1, lineCurrency, currency)
		}
		txns[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journalID,
			AccountID:       t.AccountID,
			Amount:          t.Amount,
			TransactionType: t.TransactionType,
			CurrencyCode:    lineCurrency,
			Notes:           t.Notes,
			AuditFields:     audit,
		}
	}
	if err := accounting.ValidateJournalBalance(txns); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrJournalUnbalanced, err)
	}

	journal := &domain.Journal{
		JournalID:    journalID,
		CompanyID:    companyID,
		JournalDate:  journalDate,
		Description:  req.Description,
		CurrencyCode: currency,
		SourceKind:   sourceKind,
		Status:       domain.Posted,
		Amount:       accounting.JournalAmount(txns),
		AuditFields:  audit,
	}
	return journal, txns, nil
}

// checkAccounts fails unless every referenced account exists in the company and is active.
func (s *journalService) checkAccounts(ctx context.Context, companyID string, ids map[string]bool) error {
	for id := range ids {
		acc, err := s.accountRepo.FindAccountByID(ctx, companyID, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
			}
			s.LogError(ctx, err, "Failed to fetch account for journal", slog.String("account_id", id))
			return fmt.Errorf("failed to fetch account %s: %w", id, err)
		}
		if acc.CompanyID != companyID {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s", ErrInactiveAccount, acc.Code)
		}
	}
	return nil
}

func (s *journalService) ensureOpen(ctx context.Context, companyID string, date time.Time) error {
	periods, err := s.periodRepo.ListPeriods(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods for posting check", slog.String("company_id", companyID))
		return fmt.Errorf("failed to list periods: %w", err)
	}
	return reporting.EnsureOpenForPosting(date, periods)
}

// GetJournalByID retrieves a journal with its transaction lines.
func (s *journalService) GetJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, companyID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	txns, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for journal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Transactions = txns

	s.LogDebug(ctx, "Journal retrieved", slog.String("journal_id", journalID), slog.Int("transaction_count", len(txns)))
	return journal, nil
}

// ListJournals retrieves a page of journals, each with its lines.
func (s *journalService) ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, companyID, limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	if len(journals) > 0 {
		ids := make([]string, len(journals))
		for i := range journals {
			ids[i] = journals[i].JournalID
		}
		byJournal, err := s.journalRepo.FindTransactionsByJournalIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch transactions for journals", slog.String("company_id", companyID))
			return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
		}
		for i := range journals {
			journals[i].Transactions = byJournal[journals[i].JournalID]
		}
	}

	s.LogInfo(ctx, "Journals listed", slog.String("company_id", companyID), slog.Int("count", len(journals)))
	return &dto.ListJournalsResponse{
		Journals:  dto.ToJournalResponses(journals),
		NextToken: nextToken,
	}, nil
}

// UpdateJournal changes the description of a journal. Amounts never change.
func (s *journalService) UpdateJournal(ctx context.Context, companyID, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, companyID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal for update", slog.String("journal_id", journalID))
		}
		return nil, err
	}
	if req.Description == nil {
		return journal, nil
	}
	if strings.TrimSpace(*req.Description) == "" {
		return nil, ErrDescriptionMissing
	}

	journal.Description = *req.Description
	journal.LastUpdatedAt = s.Now()
	journal.LastUpdatedBy = userID
	if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
		s.LogError(ctx, err, "Failed to update journal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal update: %w", err)
	}

	s.LogInfo(ctx, "Journal updated", slog.String("journal_id", journalID))
	return journal, nil
}

// ReverseJournal posts a journal that mirrors every line of the original on
// the opposite side, dated like the original so both land in the same period.
func (s *journalService) ReverseJournal(ctx context.Context, companyID, journalID, userID string) (*domain.Journal, error) {
	original, reversal, txns, err := s.buildReversal(ctx, companyID, journalID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveReversal(ctx, *original, *reversal, txns); err != nil {
		s.LogError(ctx, err, "Failed to save reversal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save reversing journal: %w", err)
	}

	s.LogInfo(ctx, "Journal reversed", slog.String("journal_id", journalID), slog.String("reversal_id", reversal.JournalID))
	reversal.Transactions = txns
	return reversal, nil
}

// SupersedeJournal reverses a journal and posts the corrected replacement.
// The replacement is validated before anything is written, and the reversal
// and replacement are persisted together or not at all.
func (s *journalService) SupersedeJournal(ctx context.Context, companyID, journalID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, *domain.Journal, error) {
	replacement, replacementTxns, err := s.buildJournal(ctx, companyID, req, userID)
	if err != nil {
		return nil, nil, err
	}

	original, reversal, reversalTxns, err := s.buildReversal(ctx, companyID, journalID, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.journalRepo.SaveSupersede(ctx, *original, *reversal, reversalTxns, *replacement, replacementTxns); err != nil {
		s.LogError(ctx, err, "Failed to save superseding journals", slog.String("journal_id", journalID))
		return nil, nil, fmt.Errorf("failed to supersede journal: %w", err)
	}

	s.LogInfo(ctx, "Journal superseded", slog.String("journal_id", journalID),
		slog.String("reversal_id", reversal.JournalID), slog.String("replacement_id", replacement.JournalID))
	reversal.Transactions = reversalTxns
	replacement.Transactions = replacementTxns
	return reversal, replacement, nil
}

// buildReversal checks that a journal can be reversed and returns the
// original marked as reversed together with its unsaved reversal.
func (s *journalService) buildReversal(ctx context.Context, companyID, journalID, userID string) (*domain.Journal, *domain.Journal, []domain.Transaction, error) {
	original, err := s.journalRepo.FindJournalByID(ctx, companyID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch journal for reversal", slog.String("journal_id", journalID))
		}
		return nil, nil, nil, err
	}
	switch {
	case original.OriginalJournalID != nil:
		return nil, nil, nil, ErrReversalOfReversal
	case original.ReversingJournalID != nil || original.Status == domain.Reversed:
		return nil, nil, nil, ErrAlreadyReversed
	case original.Status != domain.Posted:
		return nil, nil, nil, ErrJournalNotReversible
	}

	if err := s.ensureOpen(ctx, companyID, original.JournalDate); err != nil {
		return nil, nil, nil, err
	}

	originalTxns, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for reversal", slog.String("journal_id", journalID))
		return nil, nil, nil, fmt.Errorf("failed to retrieve original transactions: %w", err)
	}

	now := s.Now()
	reversalID := uuid.NewString()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	reversal := &domain.Journal{
		JournalID:         reversalID,
		CompanyID:         companyID,
		JournalDate:       original.JournalDate,
		Description:       reversalPrefix + original.Description,
		CurrencyCode:      original.CurrencyCode,
		SourceKind:        domain.SourceReversal,
		Status:            domain.Posted,
		OriginalJournalID: &original.JournalID,
		Amount:            original.Amount,
		AuditFields:       audit,
	}

	txns := make([]domain.Transaction, len(originalTxns))
	for i, t := range originalTxns {
		txns[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       reversalID,
			AccountID:       t.AccountID,
			Amount:          t.Amount,
			TransactionType: accounting.FlipTransactionType(t.TransactionType),
			CurrencyCode:    t.CurrencyCode,
			Notes:           t.Notes,
			AuditFields:     audit,
		}
	}

	original.Status = domain.Reversed
	original.ReversingJournalID = &reversalID
	original.LastUpdatedAt = now
	original.LastUpdatedBy = userID
	return original, reversal, txns, nil
}
