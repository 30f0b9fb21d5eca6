package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateRange is an inclusive range of calendar dates. Both ends are UTC midnight.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a range from two instants, dropping the time of day.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

// Contains reports whether the calendar date of t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether two ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.End.Before(o.Start) && !o.End.Before(r.Start)
}

// Days returns the number of calendar days in the range, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// DayBefore returns the date immediately preceding the range start.
func (r DateRange) DayBefore() time.Time {
	return r.Start.AddDate(0, 0, -1)
}
