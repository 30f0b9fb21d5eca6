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

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		sel       reporting.Selector
		fyMonth   int
		fyDay     int
		now       string
		wantStart string
		wantEnd   string
	}{
		{"fiscal April this year", reporting.ThisYear, 4, 1, "2024-02-15", "2023-04-01", "2024-03-31"},
		{"fiscal April last year", reporting.LastYear, 4, 1, "2024-02-15", "2022-04-01", "2023-03-31"},
		{"calendar this year", reporting.ThisYear, 1, 1, "2024-05-20", "2024-01-01", "2024-12-31"},
		{"this month leap February", reporting.ThisMonth, 1, 1, "2024-02-15", "2024-02-01", "2024-02-29"},
		{"last month crosses year", reporting.LastMonth, 1, 1, "2024-01-10", "2023-12-01", "2023-12-31"},
		{"calendar this quarter", reporting.ThisQuarter, 1, 1, "2024-05-20", "2024-04-01", "2024-06-30"},
		{"fiscal April last quarter", reporting.LastQuarter, 4, 1, "2024-05-20", "2024-01-01", "2024-03-31"},
		{"fiscal April this quarter in Q4", reporting.ThisQuarter, 4, 1, "2024-02-15", "2024-01-01", "2024-03-31"},
		{"all time", reporting.AllTime, 1, 1, "2024-05-20", "1900-01-01", "2024-05-20"},
		{"fiscal start day clamped", reporting.ThisYear, 2, 31, "2024-06-01", "2024-02-29", "2025-02-27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reporting.Resolve(tt.sel, tt.fyMonth, tt.fyDay, nil, day(tt.now))
			require.NoError(t, err)
			assert.Equal(t, day(tt.wantStart), r.Start)
			assert.Equal(t, day(tt.wantEnd), r.End)
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	morning := time.Date(2024, 8, 14, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 8, 14, 22, 5, 0, 0, time.UTC)

	for _, sel := range []reporting.Selector{reporting.ThisMonth, reporting.LastQuarter, reporting.ThisYear, reporting.AllTime} {
		first, err := reporting.Resolve(sel, 7, 1, nil, morning)
		require.NoError(t, err)
		second, err := reporting.Resolve(sel, 7, 1, nil, evening)
		require.NoError(t, err)
		assert.Equal(t, first, second, string(sel))
	}
}

func TestResolve_Custom(t *testing.T) {
	now := day("2024-05-20")

	r, err := reporting.Resolve(reporting.Custom, 1, 1, &domain.DateRange{Start: day("2024-01-10"), End: day("2024-01-19")}, now)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Days())

	_, err = reporting.Resolve(reporting.Custom, 1, 1, nil, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = reporting.Resolve(reporting.Custom, 1, 1, &domain.DateRange{Start: day("2024-01-10")}, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = reporting.Resolve(reporting.Custom, 1, 1, &domain.DateRange{Start: day("2024-02-10"), End: day("2024-01-10")}, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestResolve_InvalidFiscalStart(t *testing.T) {
	_, err := reporting.Resolve(reporting.ThisYear, 13, 1, nil, day("2024-05-20"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = reporting.Resolve(reporting.ThisYear, 1, 0, nil, day("2024-05-20"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseSelector(t *testing.T) {
	sel, err := reporting.ParseSelector("lastQuarter")
	require.NoError(t, err)
	assert.Equal(t, reporting.LastQuarter, sel)

	_, err = reporting.ParseSelector("nextYear")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPriorRange(t *testing.T) {
	fy := domain.DateRange{Start: day("2023-04-01"), End: day("2024-03-31")}
	prior, ok := reporting.PriorRange(reporting.ThisYear, fy, 1)
	require.True(t, ok)
	assert.Equal(t, day("2022-04-01"), prior.Start)
	assert.Equal(t, day("2023-03-31"), prior.End)

	month := domain.DateRange{Start: day("2024-03-01"), End: day("2024-03-31")}
	prior, ok = reporting.PriorRange(reporting.ThisMonth, month, 1)
	require.True(t, ok)
	assert.Equal(t, day("2024-02-01"), prior.Start)
	assert.Equal(t, day("2024-02-29"), prior.End)

	custom := domain.DateRange{Start: day("2024-01-10"), End: day("2024-01-19")}
	prior, ok = reporting.PriorRange(reporting.Custom, custom, 1)
	require.True(t, ok)
	assert.Equal(t, day("2023-12-31"), prior.Start)
	assert.Equal(t, day("2024-01-09"), prior.End)

	_, ok = reporting.PriorRange(reporting.AllTime, custom, 1)
	assert.False(t, ok)
}
