package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Journal represents a row of the journals table.
type Journal struct {
	JournalID          string          `db:"journal_id"`
	CompanyID          string          `db:"company_id"`
	JournalDate        time.Time       `db:"journal_date"`
	Description        string          `db:"description"`
	CurrencyCode       string          `db:"currency_code"`
	SourceKind         string          `db:"source_kind"`
	Status             string          `db:"status"`
	OriginalJournalID  sql.NullString  `db:"original_journal_id"`
	ReversingJournalID sql.NullString  `db:"reversing_journal_id"`
	Amount             decimal.Decimal `db:"amount"`
	AuditFields
}
