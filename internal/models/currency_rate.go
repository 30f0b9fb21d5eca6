package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate stores a company's rate for one currency from an effective date on.
type CurrencyRate struct {
	CompanyID     string          `db:"company_id"`
	CurrencyCode  string          `db:"currency_code"`
	Rate          decimal.Decimal `db:"rate"`
	IsBase        bool            `db:"is_base"`
	EffectiveDate time.Time       `db:"effective_date"`
	AuditFields
}
