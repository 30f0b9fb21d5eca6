package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// NormalizeOptions control how invalid raw records are treated.
type NormalizeOptions struct {
	// SkipInvalid drops records that reference unknown accounts or were
	// posted into a closed period, reporting a warning instead of failing.
	SkipInvalid bool
}

// NormalizeResult holds the canonical entries and any findings.
type NormalizeResult struct {
	Entries []domain.LedgerEntry
	Issues  []domain.ValidationIssue
}

// Normalize converts posted journals (manual entries, imported bank and wallet
// transactions, invoice payments and reversals) into signed ledger entries.
// Output order is by date, journal and entry ID regardless of input order.
func Normalize(journals []domain.Journal, accounts []domain.Account, periods []domain.Period, opts NormalizeOptions) (NormalizeResult, error) {
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}

	var res NormalizeResult
	for _, j := range journals {
		if p := closedPeriodRejecting(j, periods); p != nil {
			err := fmt.Errorf("%w: journal %s dated %s was posted after period %q closed",
				apperrors.ErrPeriodClosed, j.JournalID, j.JournalDate.Format(time.DateOnly), p.Name)
			if !opts.SkipInvalid {
				return NormalizeResult{}, err
			}
			res.Issues = append(res.Issues, skippedIssue("ENTRY_IN_CLOSED_PERIOD", err))
			continue
		}

		source := j.SourceKind
		if j.OriginalJournalID != nil {
			source = domain.SourceReversal
		} else if source == "" {
			source = domain.SourceManual
		}

		for _, txn := range j.Transactions {
			acc, ok := byID[txn.AccountID]
			if !ok {
				err := fmt.Errorf("%w: %s referenced by journal %s", apperrors.ErrAccountNotFound, txn.AccountID, j.JournalID)
				if !opts.SkipInvalid {
					return NormalizeResult{}, err
				}
				res.Issues = append(res.Issues, skippedIssue("UNKNOWN_ACCOUNT", err))
				continue
			}

			signed, err := accounting.CalculateSignedAmount(txn, acc.AccountType)
			if err != nil {
				return NormalizeResult{}, fmt.Errorf("%w: %v", apperrors.ErrUnclassifiable, err)
			}

			currency := txn.CurrencyCode
			if currency == "" {
				currency = j.CurrencyCode
			}

			res.Entries = append(res.Entries, domain.LedgerEntry{
				EntryID:       txn.TransactionID,
				JournalID:     j.JournalID,
				CompanyID:     j.CompanyID,
				AccountID:     acc.AccountID,
				Amount:        signed,
				CurrencyCode:  NormalizeCurrency(currency),
				EntryDate:     domain.DateOf(j.JournalDate),
				Category:      acc.Category,
				AccountType:   acc.AccountType,
				SourceKind:    source,
				LinkedEntryID: j.OriginalJournalID,
				PostedAt:      j.CreatedAt,
			})
		}
	}

	SortEntries(res.Entries)
	return res, nil
}

// SortEntries orders entries by date, journal and entry ID.
func SortEntries(entries []domain.LedgerEntry) {
	sort.SliceStable(entries, func(i, k int) bool {
		a, b := entries[i], entries[k]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if a.JournalID != b.JournalID {
			return a.JournalID < b.JournalID
		}
		return a.EntryID < b.EntryID
	})
}

// EnsureOpenForPosting fails with ErrPeriodClosed when date falls in a closed period.
func EnsureOpenForPosting(date time.Time, periods []domain.Period) error {
	for _, p := range periods {
		if p.IsClosed() && p.Contains(date) {
			return fmt.Errorf("%w: %s falls in closed period %q", apperrors.ErrPeriodClosed, date.Format(time.DateOnly), p.Name)
		}
	}
	return nil
}

// closedPeriodRejecting returns the closed period that j was posted into
// after closing, if any. Journals that predate the close are accepted.
func closedPeriodRejecting(j domain.Journal, periods []domain.Period) *domain.Period {
	for i := range periods {
		p := &periods[i]
		if !p.IsClosed() || p.ClosedAt == nil || !p.Contains(j.JournalDate) {
			continue
		}
		if j.CreatedAt.After(*p.ClosedAt) {
			return p
		}
	}
	return nil
}

func skippedIssue(code string, err error) domain.ValidationIssue {
	return domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Code:       code,
		Message:    "Entry excluded: " + err.Error(),
		Suggestion: "Correct the source record or post a reversal",
	}
}
