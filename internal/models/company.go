package models

// Company is a row of the companies table. Settings are stored as columns.
type Company struct {
	CompanyID            string `db:"company_id"`
	Name                 string `db:"name"`
	LegalName            string `db:"legal_name"`
	RegistrationNumber   string `db:"registration_number"`
	Country              string `db:"country"`
	ReportingCurrency    string `db:"reporting_currency"`
	FiscalYearStartMonth int    `db:"fiscal_year_start_month"`
	FiscalYearStartDay   int    `db:"fiscal_year_start_day"`
	AccountingMode       string `db:"accounting_mode"`
	TaxBelowTheLine      bool   `db:"tax_below_the_line"`
	ShowComparatives     bool   `db:"show_comparatives"`
	StaleTransactionDays int    `db:"stale_transaction_days"`
	AuditFields
}
