package dto

import (
	"time"
)

// StatementQuery is the query string accepted by the report endpoints.
// Dates use the 2006-01-02 layout.
type StatementQuery struct {
	Selector    string `form:"selector" binding:"omitempty,selector"`
	From        string `form:"from"`
	To          string `form:"to"`
	PeriodID    string `form:"periodId"`
	Comparative bool   `form:"comparative"`
	Currency    string `form:"currency" binding:"omitempty,currency"`
	SkipInvalid bool   `form:"skipInvalid"`
}

// StatementRequest selects the period and options of a statement run.
// A PeriodID takes precedence over Selector; Selector defaults to thisYear.
type StatementRequest struct {
	Selector          string
	From              *time.Time
	To                *time.Time
	PeriodID          string
	Comparative       bool
	ReportingCurrency string
	SkipInvalid       bool
}
