package reporting

import "github.com/vickinc/eazybizy/internal/core/domain"

// ChartEntry is a template for an account in the default chart of accounts.
type ChartEntry struct {
	Code           string
	Name           string
	Type           domain.AccountType
	Category       string
	Classification domain.AccountClassification
	Kind           domain.AccountKind
}

// DefaultChart is the IFRS chart of accounts seeded for new companies.
var DefaultChart = []ChartEntry{
	// Assets (1xxx)
	{Code: "1000", Name: "Cash on Hand", Type: domain.Asset, Category: "Cash", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "1010", Name: "Bank Account", Type: domain.Asset, Category: "Bank", Classification: domain.ClassificationCurrent, Kind: domain.KindBank},
	{Code: "1100", Name: "Accounts Receivable", Type: domain.Asset, Category: "Accounts Receivable", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "1200", Name: "Inventory", Type: domain.Asset, Category: "Inventory", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "1300", Name: "Prepaid Expenses", Type: domain.Asset, Category: "Prepaid Expenses", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "1400", Name: "VAT Receivable", Type: domain.Asset, Category: "VAT Receivable", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "1500", Name: "Property, Plant and Equipment", Type: domain.Asset, Category: "Property, Plant and Equipment", Classification: domain.ClassificationNonCurrent, Kind: domain.KindGeneral},
	{Code: "1510", Name: "Accumulated Depreciation", Type: domain.Asset, Category: "Accumulated Depreciation", Classification: domain.ClassificationNonCurrent, Kind: domain.KindGeneral},
	{Code: "1600", Name: "Intangible Assets", Type: domain.Asset, Category: "Intangible Assets", Classification: domain.ClassificationNonCurrent, Kind: domain.KindGeneral},

	// Liabilities (2xxx)
	{Code: "2000", Name: "Accounts Payable", Type: domain.Liability, Category: "Accounts Payable", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "2100", Name: "Accrued Expenses", Type: domain.Liability, Category: "Accrued Expenses", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "2200", Name: "VAT Payable", Type: domain.Liability, Category: "VAT Payable", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "2300", Name: "Income Tax Payable", Type: domain.Liability, Category: "Income Tax Payable", Classification: domain.ClassificationCurrent, Kind: domain.KindGeneral},
	{Code: "2500", Name: "Long-term Loans", Type: domain.Liability, Category: "Long-term Loans", Classification: domain.ClassificationNonCurrent, Kind: domain.KindGeneral},

	// Equity (3xxx)
	{Code: "3000", Name: "Share Capital", Type: domain.Equity, Category: "Share Capital", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "3100", Name: "Retained Earnings", Type: domain.Equity, Category: "Retained Earnings", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "3200", Name: "Dividends", Type: domain.Equity, Category: "Dividends", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "3300", Name: "Other Comprehensive Income", Type: domain.Equity, Category: "Other Comprehensive Income", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},

	// Revenue (4xxx)
	{Code: "4000", Name: "Sales Revenue", Type: domain.Revenue, Category: "Sales", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "4100", Name: "Service Revenue", Type: domain.Revenue, Category: "Services", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "4900", Name: "Interest Income", Type: domain.Revenue, Category: "Interest Income", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},

	// Expenses (5xxx-8xxx)
	{Code: "5000", Name: "Cost of Goods Sold", Type: domain.Expense, Category: "Cost of Goods Sold", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6000", Name: "Salaries and Wages", Type: domain.Expense, Category: "Salaries", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6100", Name: "Rent", Type: domain.Expense, Category: "Rent", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6200", Name: "Utilities", Type: domain.Expense, Category: "Utilities", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6300", Name: "Marketing", Type: domain.Expense, Category: "Marketing", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6400", Name: "Depreciation", Type: domain.Expense, Category: "Depreciation", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "7000", Name: "Interest Expense", Type: domain.Expense, Category: "Interest Expense", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "7100", Name: "Bank Charges", Type: domain.Expense, Category: "Bank Charges", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "8000", Name: "Income Tax Expense", Type: domain.Expense, Category: "Income Tax", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
}

// SimplifiedChart is seeded for companies in simplified mode.
var SimplifiedChart = []ChartEntry{
	{Code: "4000", Name: "Income", Type: domain.Revenue, Category: "Sales", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
	{Code: "6000", Name: "Expenses", Type: domain.Expense, Category: "General", Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral},
}

// ChartFor returns the seed chart matching the accounting mode.
func ChartFor(mode domain.AccountingMode) []ChartEntry {
	if mode == domain.ModeSimplified {
		return SimplifiedChart
	}
	return DefaultChart
}

// LookupChartEntry finds a default chart entry by code.
func LookupChartEntry(code string) *ChartEntry {
	for i := range DefaultChart {
		if DefaultChart[i].Code == code {
			return &DefaultChart[i]
		}
	}
	return nil
}
