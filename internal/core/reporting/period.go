package reporting

import (
	"fmt"
	"time"

	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// Selector names a reporting period relative to "now".
type Selector string

const (
	ThisMonth   Selector = "thisMonth"
	LastMonth   Selector = "lastMonth"
	ThisQuarter Selector = "thisQuarter"
	LastQuarter Selector = "lastQuarter"
	ThisYear    Selector = "thisYear"
	LastYear    Selector = "lastYear"
	AllTime     Selector = "allTime"
	Custom      Selector = "custom"
)

// EarliestLedgerDate is the start of the allTime range.
var EarliestLedgerDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseSelector validates a selector string.
func ParseSelector(s string) (Selector, error) {
	switch sel := Selector(s); sel {
	case ThisMonth, LastMonth, ThisQuarter, LastQuarter, ThisYear, LastYear, AllTime, Custom:
		return sel, nil
	}
	return "", fmt.Errorf("%w: unknown period selector %q", apperrors.ErrValidation, s)
}

// Resolve maps a selector to a concrete inclusive date range. Quarters and
// years are fiscal, starting on fyMonth/fyDay; a start day past the end of a
// month is clamped to that month's last day. custom is only read for Custom.
func Resolve(sel Selector, fyMonth, fyDay int, custom *domain.DateRange, now time.Time) (domain.DateRange, error) {
	if fyMonth < 1 || fyMonth > 12 {
		return domain.DateRange{}, fmt.Errorf("%w: fiscal year start month %d out of range", apperrors.ErrValidation, fyMonth)
	}
	if fyDay < 1 || fyDay > 31 {
		return domain.DateRange{}, fmt.Errorf("%w: fiscal year start day %d out of range", apperrors.ErrValidation, fyDay)
	}

	today := domain.DateOf(now)

	switch sel {
	case ThisMonth:
		start := anchor(today.Year(), int(today.Month()), 1)
		return monthsFrom(start, 1, 1), nil
	case LastMonth:
		start := anchor(today.Year(), int(today.Month())-1, 1)
		return monthsFrom(start, 1, 1), nil
	case ThisQuarter:
		start := fiscalQuarterStart(today, fyMonth, fyDay)
		return monthsFrom(start, 3, fyDay), nil
	case LastQuarter:
		cur := fiscalQuarterStart(today, fyMonth, fyDay)
		start := anchor(cur.Year(), int(cur.Month())-3, fyDay)
		return monthsFrom(start, 3, fyDay), nil
	case ThisYear:
		start := fiscalYearStart(today, fyMonth, fyDay)
		return monthsFrom(start, 12, fyDay), nil
	case LastYear:
		cur := fiscalYearStart(today, fyMonth, fyDay)
		start := anchor(cur.Year()-1, int(cur.Month()), fyDay)
		return monthsFrom(start, 12, fyDay), nil
	case AllTime:
		return domain.DateRange{Start: EarliestLedgerDate, End: today}, nil
	case Custom:
		return resolveCustom(custom)
	}
	return domain.DateRange{}, fmt.Errorf("%w: unknown period selector %q", apperrors.ErrValidation, sel)
}

// PriorRange returns the comparative range for a resolved selector: the
// previous month, quarter or fiscal year, or for custom ranges the window of
// equal length ending the day before. allTime has no prior range.
func PriorRange(sel Selector, r domain.DateRange, fyDay int) (domain.DateRange, bool) {
	end := r.DayBefore()
	switch sel {
	case ThisMonth, LastMonth:
		return domain.DateRange{Start: anchor(r.Start.Year(), int(r.Start.Month())-1, 1), End: end}, true
	case ThisQuarter, LastQuarter:
		return domain.DateRange{Start: anchor(r.Start.Year(), int(r.Start.Month())-3, fyDay), End: end}, true
	case ThisYear, LastYear:
		return domain.DateRange{Start: anchor(r.Start.Year()-1, int(r.Start.Month()), fyDay), End: end}, true
	case Custom:
		return domain.DateRange{Start: end.AddDate(0, 0, 1-r.Days()), End: end}, true
	}
	return domain.DateRange{}, false
}

func resolveCustom(custom *domain.DateRange) (domain.DateRange, error) {
	if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: custom range requires both start and end dates", apperrors.ErrInvalidRange)
	}
	r := domain.NewDateRange(custom.Start, custom.End)
	if r.End.Before(r.Start) {
		return domain.DateRange{}, fmt.Errorf("%w: end date %s is before start date %s",
			apperrors.ErrInvalidRange, r.End.Format(time.DateOnly), r.Start.Format(time.DateOnly))
	}
	return r, nil
}

// fiscalYearStart returns the start of the fiscal year containing day.
func fiscalYearStart(day time.Time, fyMonth, fyDay int) time.Time {
	start := anchor(day.Year(), fyMonth, fyDay)
	if day.Before(start) {
		start = anchor(day.Year()-1, fyMonth, fyDay)
	}
	return start
}

// fiscalQuarterStart returns the start of the fiscal quarter containing day.
func fiscalQuarterStart(day time.Time, fyMonth, fyDay int) time.Time {
	yearStart := fiscalYearStart(day, fyMonth, fyDay)
	start := yearStart
	for q := 1; q < 4; q++ {
		next := anchor(yearStart.Year(), int(yearStart.Month())+3*q, fyDay)
		if day.Before(next) {
			break
		}
		start = next
	}
	return start
}

// monthsFrom returns the range starting at start and ending the day before
// the anchor n months later.
func monthsFrom(start time.Time, n, day int) domain.DateRange {
	next := anchor(start.Year(), int(start.Month())+n, day)
	return domain.DateRange{Start: start, End: next.AddDate(0, 0, -1)}
}

// anchor builds a UTC date, normalising month overflow into the year and
// clamping day to the length of the resulting month.
func anchor(year, month, day int) time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
