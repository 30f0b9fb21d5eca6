package domain

import "time"

// PeriodType describes the span an accounting period covers.
type PeriodType string

const (
	PeriodAnnual    PeriodType = "ANNUAL"
	PeriodInterim   PeriodType = "INTERIM"
	PeriodQuarterly PeriodType = "QUARTERLY"
	PeriodMonthly   PeriodType = "MONTHLY"
	PeriodCustom    PeriodType = "CUSTOM"
)

// IsValid reports whether t is a known period type.
func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodAnnual, PeriodInterim, PeriodQuarterly, PeriodMonthly, PeriodCustom:
		return true
	}
	return false
}

// PeriodStatus is the close state of a period. A reopened period is OPEN again
// and keeps ReopenedAt for the audit trail.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Period is an accounting period owned by a company.
type Period struct {
	PeriodID   string       `json:"periodID"`
	CompanyID  string       `json:"companyID"`
	Name       string       `json:"name"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	FiscalYear int          `json:"fiscalYear"`
	PeriodType PeriodType   `json:"periodType"`
	Status     PeriodStatus `json:"status"`
	ClosedAt   *time.Time   `json:"closedAt,omitempty"`
	ClosedBy   *string      `json:"closedBy,omitempty"`
	ReopenedAt *time.Time   `json:"reopenedAt,omitempty"`
	AuditFields
}

// IsClosed reports whether the period currently rejects new postings.
func (p Period) IsClosed() bool {
	return p.Status == PeriodClosed
}

// Range returns the period's dates as a DateRange.
func (p Period) Range() DateRange {
	return NewDateRange(p.StartDate, p.EndDate)
}

// Contains reports whether date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	return p.Range().Contains(date)
}
