package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVariance(t *testing.T) {
	v, pct := Variance(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(50).Equal(v))
	if assert.NotNil(t, pct) {
		assert.Equal(t, "50.00", pct.StringFixed(2))
	}

	v, pct = Variance(decimal.NewFromInt(-20), decimal.NewFromInt(-40))
	assert.True(t, decimal.NewFromInt(20).Equal(v))
	if assert.NotNil(t, pct) {
		assert.Equal(t, "-50.00", pct.StringFixed(2))
	}
}

func TestVariance_ZeroPrior(t *testing.T) {
	v, pct := Variance(decimal.NewFromInt(75), decimal.Zero)
	assert.True(t, decimal.NewFromInt(75).Equal(v))
	assert.Nil(t, pct)

	v, pct = Variance(decimal.Zero, decimal.Zero)
	assert.True(t, v.IsZero())
	assert.Nil(t, pct)
}

func TestWithinEpsilon(t *testing.T) {
	assert.True(t, WithinEpsilon(decimal.RequireFromString("10.004"), decimal.NewFromInt(10)))
	assert.False(t, WithinEpsilon(decimal.RequireFromString("10.01"), decimal.NewFromInt(10)))
	assert.Equal(t, "2.35", RoundMoney(decimal.RequireFromString("2.345")).StringFixed(2))
}
