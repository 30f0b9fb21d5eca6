package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// UpsertRateRequest sets the rate of a currency against the company's base.
type UpsertRateRequest struct {
	Code          string          `json:"code" binding:"required,currency"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	IsBase        bool            `json:"isBase"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

// RateResponse defines the data returned for a currency rate.
type RateResponse struct {
	Code          string          `json:"code"`
	Rate          decimal.Decimal `json:"rate"`
	IsBase        bool            `json:"isBase"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

// ToRateResponses converts domain rates to RateResponse DTOs.
func ToRateResponses(rates []domain.CurrencyRate) []RateResponse {
	res := make([]RateResponse, len(rates))
	for i, r := range rates {
		res[i] = RateResponse{Code: r.Code, Rate: r.Rate, IsBase: r.IsBase, EffectiveDate: r.EffectiveDate}
	}
	return res
}
