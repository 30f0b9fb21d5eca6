package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		acc       domain.Account
		bucket    reporting.Bucket
		class     domain.AccountClassification
		cash      bool
		nonCash   bool
		component reporting.EquityComponent
	}{
		{"sales", domain.Account{AccountType: domain.Revenue, Category: "Sales"}, reporting.BucketRevenue, domain.ClassificationNotApplicable, false, false, ""},
		{"interest income", domain.Account{AccountType: domain.Revenue, Category: "Interest Income"}, reporting.BucketOtherIncome, domain.ClassificationNotApplicable, false, false, ""},
		{"cogs", domain.Account{AccountType: domain.Expense, Category: " cost of goods sold "}, reporting.BucketCostOfSales, domain.ClassificationNotApplicable, false, false, ""},
		{"depreciation", domain.Account{AccountType: domain.Expense, Category: "Depreciation"}, reporting.BucketOperatingExpense, domain.ClassificationNotApplicable, false, true, ""},
		{"income tax", domain.Account{AccountType: domain.Expense, Category: "Income Tax"}, reporting.BucketIncomeTax, domain.ClassificationNotApplicable, false, false, ""},
		{"bank kind", domain.Account{AccountType: domain.Asset, Category: "Whatever", Kind: domain.KindBank}, reporting.BucketAsset, domain.ClassificationCurrent, true, false, ""},
		{"receivables", domain.Account{AccountType: domain.Asset, Category: "Accounts Receivable"}, reporting.BucketAsset, domain.ClassificationCurrent, false, false, ""},
		{"accumulated depreciation", domain.Account{AccountType: domain.Asset, Category: "Accumulated Depreciation"}, reporting.BucketAsset, domain.ClassificationNonCurrent, false, true, ""},
		{"explicit override", domain.Account{AccountType: domain.Liability, Category: "Long-term Loans", Classification: domain.ClassificationCurrent}, reporting.BucketLiability, domain.ClassificationCurrent, false, false, ""},
		{"share capital", domain.Account{AccountType: domain.Equity, Category: "Share Capital"}, reporting.BucketEquity, domain.ClassificationNotApplicable, false, false, reporting.EquityContribution},
		{"dividends", domain.Account{AccountType: domain.Equity, Category: "Dividends"}, reporting.BucketEquity, domain.ClassificationNotApplicable, false, false, reporting.EquityDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, issues, err := reporting.Classify(tt.acc, domain.ModeFull)
			require.NoError(t, err)
			assert.Empty(t, issues)
			assert.Equal(t, tt.bucket, c.Bucket)
			assert.Equal(t, tt.class, c.Classification)
			assert.Equal(t, tt.cash, c.Cash)
			assert.Equal(t, tt.nonCash, c.NonCash)
			assert.Equal(t, tt.component, c.Equity)
		})
	}
}

func TestClassify_UnknownCategoryFallsBackToNonCurrent(t *testing.T) {
	acc := domain.Account{AccountID: "a1", Code: "1990", Name: "Mystery", AccountType: domain.Asset, Category: "Crypto Stash"}

	c, issues, err := reporting.Classify(acc, domain.ModeFull)
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationNonCurrent, c.Classification)
	assert.True(t, c.Fallback)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Equal(t, "CLASSIFICATION_FALLBACK", issues[0].Code)
}

func TestClassify_Errors(t *testing.T) {
	_, _, err := reporting.Classify(domain.Account{AccountType: "INCOME"}, domain.ModeFull)
	assert.ErrorIs(t, err, apperrors.ErrUnclassifiable)

	_, _, err = reporting.Classify(domain.Account{AccountType: domain.Asset, Category: "Bank"}, domain.ModeSimplified)
	assert.ErrorIs(t, err, apperrors.ErrUnclassifiable)

	c, _, err := reporting.Classify(domain.Account{AccountType: domain.Expense, Category: "General"}, domain.ModeSimplified)
	require.NoError(t, err)
	assert.Equal(t, reporting.BucketOperatingExpense, c.Bucket)
}

func TestDefaultChartIsFullyClassified(t *testing.T) {
	for _, acc := range chartAccounts() {
		_, issues, err := reporting.Classify(acc, domain.ModeFull)
		require.NoError(t, err, acc.Code)
		assert.Empty(t, issues, acc.Code)
	}
	require.NotNil(t, reporting.LookupChartEntry("1510"))
	assert.Nil(t, reporting.LookupChartEntry("9999"))
	assert.Len(t, reporting.ChartFor(domain.ModeSimplified), 2)
}
