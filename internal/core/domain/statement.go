package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationIssue is a soft finding attached to a generated statement.
type ValidationIssue struct {
	Severity      Severity `json:"severity"`
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Suggestion    string   `json:"suggestion,omitempty"`
	IFRSReference string   `json:"ifrsReference,omitempty"`
}

// StatementKind names a financial statement.
type StatementKind string

const (
	StatementProfitLoss    StatementKind = "PROFIT_AND_LOSS"
	StatementBalanceSheet  StatementKind = "BALANCE_SHEET"
	StatementCashFlow      StatementKind = "CASH_FLOW"
	StatementEquityChanges StatementKind = "EQUITY_CHANGES"
)

// StatementResult wraps a computed statement with its validation findings.
// It is recomputed on every request and never persisted.
type StatementResult[T any] struct {
	Statement         StatementKind     `json:"statement"`
	Available         bool              `json:"available"`
	UnavailableReason string            `json:"unavailableReason,omitempty"`
	Data              *T                `json:"data"`
	Validation        []ValidationIssue `json:"validation"`
}

// HasErrors reports whether any issue has error severity.
func (r StatementResult[T]) HasErrors() bool {
	return HasErrors(r.Validation)
}

// HasErrors reports whether any issue in the list has error severity.
func HasErrors(issues []ValidationIssue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Figure is a reported amount with optional comparative columns.
// VariancePercent stays nil when the prior amount is zero.
type Figure struct {
	Amount          decimal.Decimal  `json:"amount"`
	Prior           *decimal.Decimal `json:"prior,omitempty"`
	Variance        *decimal.Decimal `json:"variance,omitempty"`
	VariancePercent *decimal.Decimal `json:"variancePercent,omitempty"`
}

// StatementLine is one account (or synthetic item) on a statement.
type StatementLine struct {
	AccountID string `json:"accountID,omitempty"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Figure
}

// StatementSection groups lines under a subtotal.
type StatementSection struct {
	Key           string          `json:"key"`
	Label         string          `json:"label"`
	IFRSReference string          `json:"ifrsReference,omitempty"`
	Lines         []StatementLine `json:"lines"`
	Total         Figure          `json:"total"`
}

// ProfitLossData is the statement of profit or loss for a period.
type ProfitLossData struct {
	Company           CompanyInfo      `json:"company"`
	Currency          string           `json:"currency"`
	Period            DateRange        `json:"period"`
	PriorPeriod       *DateRange       `json:"priorPeriod,omitempty"`
	Revenue           StatementSection `json:"revenue"`
	CostOfSales       StatementSection `json:"costOfSales"`
	GrossProfit       Figure           `json:"grossProfit"`
	OperatingExpenses StatementSection `json:"operatingExpenses"`
	OperatingProfit   Figure           `json:"operatingProfit"`
	OtherIncome       StatementSection `json:"otherIncome"`
	OtherExpenses     StatementSection `json:"otherExpenses"`
	ProfitBeforeTax   Figure           `json:"profitBeforeTax"`
	IncomeTax         StatementSection `json:"incomeTax"`
	NetIncome         Figure           `json:"netIncome"`
}

// BalanceSheetData is the statement of financial position at a date.
type BalanceSheetData struct {
	Company                   CompanyInfo      `json:"company"`
	Currency                  string           `json:"currency"`
	AsOf                      time.Time        `json:"asOf"`
	PriorAsOf                 *time.Time       `json:"priorAsOf,omitempty"`
	CurrentAssets             StatementSection `json:"currentAssets"`
	NonCurrentAssets          StatementSection `json:"nonCurrentAssets"`
	TotalAssets               Figure           `json:"totalAssets"`
	CurrentLiabilities        StatementSection `json:"currentLiabilities"`
	NonCurrentLiabilities     StatementSection `json:"nonCurrentLiabilities"`
	TotalLiabilities          Figure           `json:"totalLiabilities"`
	Equity                    StatementSection `json:"equity"`
	TotalEquity               Figure           `json:"totalEquity"`
	TotalLiabilitiesAndEquity Figure           `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool             `json:"balanced"`
	Difference                decimal.Decimal  `json:"difference"`
}

// CashFlowData is the statement of cash flows prepared by the indirect method.
type CashFlowData struct {
	Company                CompanyInfo      `json:"company"`
	Currency               string           `json:"currency"`
	Period                 DateRange        `json:"period"`
	Method                 string           `json:"method"`
	NetIncome              decimal.Decimal  `json:"netIncome"`
	Adjustments            StatementSection `json:"adjustments"`
	WorkingCapital         StatementSection `json:"workingCapital"`
	NetCashFromOperating   decimal.Decimal  `json:"netCashFromOperating"`
	Investing              StatementSection `json:"investing"`
	Financing              StatementSection `json:"financing"`
	NetCashChange          decimal.Decimal  `json:"netCashChange"`
	OpeningCash            decimal.Decimal  `json:"openingCash"`
	ClosingCash            decimal.Decimal  `json:"closingCash"`
	ClosingCashPerBalances decimal.Decimal  `json:"closingCashPerBalances"`
}

// EquityChangesData is the statement of changes in equity for a period.
type EquityChangesData struct {
	Company                   CompanyInfo     `json:"company"`
	Currency                  string          `json:"currency"`
	Period                    DateRange       `json:"period"`
	OpeningBalance            decimal.Decimal `json:"openingBalance"`
	NetIncome                 decimal.Decimal `json:"netIncome"`
	CapitalContributions      decimal.Decimal `json:"capitalContributions"`
	Distributions             decimal.Decimal `json:"distributions"`
	OtherComprehensiveIncome  decimal.Decimal `json:"otherComprehensiveIncome"`
	OpeningBalanceAdjustments decimal.Decimal `json:"openingBalanceAdjustments"`
	OtherMovements            decimal.Decimal `json:"otherMovements"`
	Movements                 []StatementLine `json:"movements"`
	ClosingBalance            decimal.Decimal `json:"closingBalance"`
}

// StatementBundle is the full reconciled set of statements for one period.
type StatementBundle struct {
	CompanyID      string                             `json:"companyID"`
	Currency       string                             `json:"currency"`
	Period         DateRange                          `json:"period"`
	PriorPeriod    *DateRange                         `json:"priorPeriod,omitempty"`
	GeneratedAt    time.Time                          `json:"generatedAt"`
	ProfitLoss     StatementResult[ProfitLossData]    `json:"profitAndLoss"`
	BalanceSheet   StatementResult[BalanceSheetData]  `json:"balanceSheet"`
	CashFlow       StatementResult[CashFlowData]      `json:"cashFlow"`
	EquityChanges  StatementResult[EquityChangesData] `json:"equityChanges"`
	Reconciliation []ValidationIssue                  `json:"reconciliation"`
}
