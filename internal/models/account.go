package models

// Account represents a row of a company's chart of accounts.
type Account struct {
	AccountID      string `db:"account_id"`
	CompanyID      string `db:"company_id"`
	Code           string `db:"code"`
	Name           string `db:"name"`
	AccountType    string `db:"account_type"`
	Category       string `db:"category"`
	Classification string `db:"classification"` // empty means unset
	Kind           string `db:"kind"`
	CurrencyCode   string `db:"currency_code"`
	Description    string `db:"description"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
