package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// RateTable converts amounts between currencies through a single base.
// The base-equivalent value of an amount is amount * rate[code].
type RateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewRateTable validates rates and builds a table. Exactly one rate must be
// the base, with a rate of 1, and every rate must be positive.
func NewRateTable(rates []domain.CurrencyRate) (*RateTable, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: rate table is empty", apperrors.ErrValidation)
	}

	t := &RateTable{rates: make(map[string]decimal.Decimal, len(rates))}
	for _, r := range rates {
		code := NormalizeCurrency(r.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: currency rate with empty code", apperrors.ErrValidation)
		}
		if _, dup := t.rates[code]; dup {
			return nil, fmt.Errorf("%w: duplicate rate for %s", apperrors.ErrValidation, code)
		}
		if !r.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrValidation, code, r.Rate.String())
		}
		if r.IsBase {
			if t.base != "" {
				return nil, fmt.Errorf("%w: both %s and %s are marked as base currency", apperrors.ErrValidation, t.base, code)
			}
			if !r.Rate.Equal(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("%w: base currency %s must have rate 1, got %s", apperrors.ErrValidation, code, r.Rate.String())
			}
			t.base = code
		}
		t.rates[code] = r.Rate
	}
	if t.base == "" {
		return nil, fmt.Errorf("%w: rate table has no base currency", apperrors.ErrValidation)
	}
	return t, nil
}

// Base returns the base currency code.
func (t *RateTable) Base() string {
	return t.base
}

// Has reports whether the table knows code.
func (t *RateTable) Has(code string) bool {
	_, ok := t.rates[NormalizeCurrency(code)]
	return ok
}

// Codes returns the known currency codes in sorted order.
func (t *RateTable) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for c := range t.rates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Convert expresses amount, held in from, in to. Identical currencies
// return amount unchanged without consulting the table.
func (t *RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = NormalizeCurrency(from), NormalizeCurrency(to)
	if from == to {
		return amount, nil
	}
	rf, ok := t.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, from)
	}
	rt, ok := t.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, to)
	}
	return amount.Mul(rf).Div(rt), nil
}

// Convert is a convenience wrapper that builds a table from rates and converts once.
func Convert(amount decimal.Decimal, from, to string, rates []domain.CurrencyRate) (decimal.Decimal, error) {
	if NormalizeCurrency(from) == NormalizeCurrency(to) {
		return amount, nil
	}
	t, err := NewRateTable(rates)
	if err != nil {
		return decimal.Zero, err
	}
	return t.Convert(amount, from, to)
}
