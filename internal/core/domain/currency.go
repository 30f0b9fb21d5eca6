package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate expresses one currency against the table's base.
// The base-equivalent value of an amount is amount * Rate.
type CurrencyRate struct {
	CompanyID     string          `json:"companyID,omitempty"`
	Code          string          `json:"code"`
	Rate          decimal.Decimal `json:"rate"`
	IsBase        bool            `json:"isBase"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	AuditFields
}

// Currency code length bounds. ISO 4217 codes have three letters; wallet
// assets use tickers such as USDT.
const (
	MinCurrencyCodeLen = 3
	MaxCurrencyCodeLen = 10
)

// ValidCurrencyCode reports whether code is 3 to 10 ASCII letters or digits.
func ValidCurrencyCode(code string) bool {
	if len(code) < MinCurrencyCodeLen || len(code) > MaxCurrencyCodeLen {
		return false
	}
	for _, r := range code {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}
