package models

import (
	"database/sql"
	"time"
)

// Period represents a row of the accounting_periods table.
type Period struct {
	PeriodID   string         `db:"period_id"`
	CompanyID  string         `db:"company_id"`
	Name       string         `db:"name"`
	StartDate  time.Time      `db:"start_date"`
	EndDate    time.Time      `db:"end_date"`
	FiscalYear int            `db:"fiscal_year"`
	PeriodType string         `db:"period_type"`
	Status     string         `db:"status"`
	ClosedAt   sql.NullTime   `db:"closed_at"`
	ClosedBy   sql.NullString `db:"closed_by"`
	ReopenedAt sql.NullTime   `db:"reopened_at"`
	AuditFields
}
