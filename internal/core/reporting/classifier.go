package reporting

import (
	"fmt"
	"strings"

	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// Bucket is the statement section an account reports under.
type Bucket string

const (
	BucketRevenue          Bucket = "REVENUE"
	BucketCostOfSales      Bucket = "COST_OF_SALES"
	BucketOperatingExpense Bucket = "OPERATING_EXPENSE"
	BucketOtherIncome      Bucket = "OTHER_INCOME"
	BucketOtherExpense     Bucket = "OTHER_EXPENSE"
	BucketIncomeTax        Bucket = "INCOME_TAX"
	BucketAsset            Bucket = "ASSET"
	BucketLiability        Bucket = "LIABILITY"
	BucketEquity           Bucket = "EQUITY"
)

// EquityComponent splits equity movements for the statement of changes in equity.
type EquityComponent string

const (
	EquityContribution EquityComponent = "CONTRIBUTION"
	EquityDistribution EquityComponent = "DISTRIBUTION"
	EquityOCI          EquityComponent = "OCI"
	EquityOther        EquityComponent = "OTHER"
)

// Classification is the result of classifying one account.
type Classification struct {
	Bucket         Bucket                       `json:"bucket"`
	Classification domain.AccountClassification `json:"classification"`
	Cash           bool                         `json:"cash"`
	NonCash        bool                         `json:"nonCash"` // depreciation, amortisation and their contra accounts
	Equity         EquityComponent              `json:"equity,omitempty"`
	Fallback       bool                         `json:"fallback"`
}

// Category lookup tables. Keys are lower-cased category names.
var (
	costOfSalesCategories = set("cost of goods sold", "cost of sales", "cogs", "direct costs", "purchases", "materials")

	incomeTaxCategories = set("income tax", "income tax expense", "corporate tax", "corporate income tax", "tax expense")

	otherExpenseCategories = set("interest expense", "finance costs", "bank charges", "foreign exchange loss",
		"loss on disposal", "impairment loss")

	otherIncomeCategories = set("other income", "interest income", "finance income", "foreign exchange gain",
		"gain on disposal", "dividend income")

	nonCashExpenseCategories = set("depreciation", "amortisation", "amortization", "depreciation and amortisation")

	cashCategories = set("cash", "cash and cash equivalents", "petty cash", "bank", "wallet")

	currentAssetCategories = set("cash", "cash and cash equivalents", "petty cash", "bank", "wallet",
		"accounts receivable", "trade receivables", "other receivables", "inventory", "prepaid expenses",
		"short-term investments", "vat receivable", "tax receivable", "other current assets")

	nonCurrentAssetCategories = set("property, plant and equipment", "property, plant & equipment", "fixed assets",
		"intangible assets", "goodwill", "long-term investments", "right-of-use assets", "deferred tax assets",
		"accumulated depreciation", "accumulated amortisation", "accumulated amortization")

	contraAssetCategories = set("accumulated depreciation", "accumulated amortisation", "accumulated amortization")

	currentLiabilityCategories = set("accounts payable", "trade payables", "accrued expenses", "vat payable",
		"tax payable", "income tax payable", "salaries payable", "short-term loans", "credit card",
		"customer deposits", "deferred revenue", "other current liabilities")

	nonCurrentLiabilityCategories = set("long-term loans", "loans payable", "bonds payable", "lease liabilities",
		"deferred tax liabilities", "other non-current liabilities")

	contributionCategories = set("share capital", "common stock", "capital contributions", "owner's capital", "capital")

	distributionCategories = set("dividends", "distributions", "drawings", "owner's drawings")

	ociCategories = set("other comprehensive income", "revaluation reserve", "translation reserve")
)

// Classify maps an account to its statement bucket and current/non-current
// split. Unknown asset or liability categories fall back to non-current and
// produce a warning. In simplified mode only revenue and expense accounts
// can be classified.
func Classify(acc domain.Account, mode domain.AccountingMode) (Classification, []domain.ValidationIssue, error) {
	if !acc.AccountType.IsValid() {
		return Classification{}, nil, fmt.Errorf("%w: account %s has unknown type %q", apperrors.ErrUnclassifiable, acc.AccountID, acc.AccountType)
	}
	if mode == domain.ModeSimplified && acc.AccountType.IsBalanceSheet() {
		return Classification{}, nil, fmt.Errorf("%w: account %s is a %s account but the company uses simplified mode",
			apperrors.ErrUnclassifiable, acc.AccountID, acc.AccountType)
	}

	cat := categoryKey(acc.Category)
	c := Classification{Classification: domain.ClassificationNotApplicable}

	switch acc.AccountType {
	case domain.Revenue:
		c.Bucket = BucketRevenue
		if otherIncomeCategories[cat] {
			c.Bucket = BucketOtherIncome
		}
		return c, nil, nil
	case domain.Expense:
		switch {
		case costOfSalesCategories[cat]:
			c.Bucket = BucketCostOfSales
		case incomeTaxCategories[cat]:
			c.Bucket = BucketIncomeTax
		case otherExpenseCategories[cat]:
			c.Bucket = BucketOtherExpense
		default:
			c.Bucket = BucketOperatingExpense
		}
		c.NonCash = nonCashExpenseCategories[cat]
		return c, nil, nil
	case domain.Equity:
		c.Bucket = BucketEquity
		c.Equity = equityComponent(cat)
		return c, nil, nil
	case domain.Asset:
		c.Bucket = BucketAsset
		c.Cash = acc.Kind.IsCash() || cashCategories[cat]
		c.NonCash = contraAssetCategories[cat]
		if c.Cash {
			c.Classification = domain.ClassificationCurrent
			return c, nil, nil
		}
		return balanceSheetSplit(acc, c, currentAssetCategories[cat], nonCurrentAssetCategories[cat])
	default:
		c.Bucket = BucketLiability
		return balanceSheetSplit(acc, c, currentLiabilityCategories[cat], nonCurrentLiabilityCategories[cat])
	}
}

// IsIncomeStatement reports whether the bucket belongs on the P&L.
func (b Bucket) IsIncomeStatement() bool {
	switch b {
	case BucketAsset, BucketLiability, BucketEquity:
		return false
	}
	return true
}

// IsCredit reports whether the bucket adds to profit.
func (b Bucket) IsCredit() bool {
	return b == BucketRevenue || b == BucketOtherIncome
}

func balanceSheetSplit(acc domain.Account, c Classification, current, nonCurrent bool) (Classification, []domain.ValidationIssue, error) {
	switch acc.Classification {
	case domain.ClassificationCurrent, domain.ClassificationNonCurrent:
		c.Classification = acc.Classification
		return c, nil, nil
	}
	switch {
	case current:
		c.Classification = domain.ClassificationCurrent
		return c, nil, nil
	case nonCurrent:
		c.Classification = domain.ClassificationNonCurrent
		return c, nil, nil
	}

	c.Classification = domain.ClassificationNonCurrent
	c.Fallback = true
	issue := domain.ValidationIssue{
		Severity:      domain.SeverityWarning,
		Code:          "CLASSIFICATION_FALLBACK",
		Message:       fmt.Sprintf("Account %s %q has unrecognised category %q and was classified as non-current", acc.Code, acc.Name, acc.Category),
		Suggestion:    "Set an explicit current or non-current classification on the account",
		IFRSReference: "IAS 1.60",
	}
	return c, []domain.ValidationIssue{issue}, nil
}

func equityComponent(cat string) EquityComponent {
	switch {
	case contributionCategories[cat]:
		return EquityContribution
	case distributionCategories[cat]:
		return EquityDistribution
	case ociCategories[cat]:
		return EquityOCI
	}
	return EquityOther
}

func categoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
