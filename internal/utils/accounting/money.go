package accounting

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places reported for amounts.
const MoneyPlaces = 2

// Epsilon is the smallest currency unit; differences below it are treated as equal.
var Epsilon = decimal.New(1, -MoneyPlaces)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds an amount half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// WithinEpsilon reports whether |a - b| is strictly smaller than Epsilon.
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Epsilon)
}

// Variance returns current - prior and the percentage change against prior.
// The percentage is nil when prior is zero.
func Variance(current, prior decimal.Decimal) (decimal.Decimal, *decimal.Decimal) {
	variance := current.Sub(prior)
	if prior.IsZero() {
		return variance, nil
	}
	pct := variance.Div(prior).Mul(hundred).Round(MoneyPlaces)
	return variance, &pct
}
