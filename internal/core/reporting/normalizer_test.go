package reporting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

func closedQ1() domain.Period {
	closedAt := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	return domain.Period{
		PeriodID:  "p-q1",
		CompanyID: testCompany,
		Name:      "Q1 2024",
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-03-31"),
		Status:    domain.PeriodClosed,
		ClosedAt:  &closedAt,
	}
}

func TestNormalize_SignsAndOrder(t *testing.T) {
	journals := []domain.Journal{
		journal("j2", "2024-03-01", dr("6100", "200"), cr("1010", "200")),
		journal("j1", "2024-02-01", dr("1010", "500"), cr("4000", "500")),
	}

	res, err := reporting.Normalize(journals, chartAccounts(), nil, reporting.NormalizeOptions{})
	require.NoError(t, err)
	require.Len(t, res.Entries, 4)
	assert.Empty(t, res.Issues)

	first := res.Entries[0]
	assert.Equal(t, "j1", first.JournalID)
	assert.Equal(t, accID("1010"), first.AccountID)
	assert.True(t, dec("500").Equal(first.Amount))
	assert.Equal(t, "USD", first.CurrencyCode)
	assert.Equal(t, domain.SourceManual, first.SourceKind)

	revenue := res.Entries[1]
	assert.Equal(t, accID("4000"), revenue.AccountID)
	assert.True(t, dec("500").Equal(revenue.Amount), "credit to revenue is positive")

	bankOut := res.Entries[3]
	assert.Equal(t, accID("1010"), bankOut.AccountID)
	assert.True(t, dec("-200").Equal(bankOut.Amount), "credit to an asset is negative")
}

func TestNormalize_ReversalIsLinked(t *testing.T) {
	original := "j1"
	rev := journal("j1-rev", "2024-02-05", cr("1010", "500"), dr("4000", "500"))
	rev.OriginalJournalID = &original

	res, err := reporting.Normalize([]domain.Journal{rev}, chartAccounts(), nil, reporting.NormalizeOptions{})
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	for _, e := range res.Entries {
		assert.Equal(t, domain.SourceReversal, e.SourceKind)
		require.NotNil(t, e.LinkedEntryID)
		assert.Equal(t, original, *e.LinkedEntryID)
	}
}

func TestNormalize_UnknownAccount(t *testing.T) {
	journals := []domain.Journal{journal("j1", "2024-02-01", dr("1010", "500"), cr("4999", "500"))}

	_, err := reporting.Normalize(journals, chartAccounts(), nil, reporting.NormalizeOptions{})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)

	res, err := reporting.Normalize(journals, chartAccounts(), nil, reporting.NormalizeOptions{SkipInvalid: true})
	require.NoError(t, err)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, []string{"UNKNOWN_ACCOUNT"}, issueCodes(res.Issues))
}

func TestNormalize_ClosedPeriod(t *testing.T) {
	periods := []domain.Period{closedQ1()}

	before := journal("j-before", "2024-03-15", dr("1010", "100"), cr("4000", "100"))
	res, err := reporting.Normalize([]domain.Journal{before}, chartAccounts(), periods, reporting.NormalizeOptions{})
	require.NoError(t, err, "journals created before the close are kept")
	assert.Len(t, res.Entries, 2)

	late := journal("j-late", "2024-03-15", dr("1010", "100"), cr("4000", "100"))
	late.CreatedAt = time.Date(2024, 4, 11, 9, 0, 0, 0, time.UTC)
	_, err = reporting.Normalize([]domain.Journal{late}, chartAccounts(), periods, reporting.NormalizeOptions{})
	assert.ErrorIs(t, err, apperrors.ErrPeriodClosed)

	res, err = reporting.Normalize([]domain.Journal{late}, chartAccounts(), periods, reporting.NormalizeOptions{SkipInvalid: true})
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, []string{"ENTRY_IN_CLOSED_PERIOD"}, issueCodes(res.Issues))
}

func TestEnsureOpenForPosting(t *testing.T) {
	periods := []domain.Period{closedQ1()}

	assert.ErrorIs(t, reporting.EnsureOpenForPosting(day("2024-02-01"), periods), apperrors.ErrPeriodClosed)
	assert.NoError(t, reporting.EnsureOpenForPosting(day("2024-04-01"), periods))

	periods[0].Status = domain.PeriodOpen
	assert.NoError(t, reporting.EnsureOpenForPosting(day("2024-02-01"), periods))
}
