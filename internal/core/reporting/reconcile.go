package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// ReconcileInput carries the built statements. Nil or unavailable statements
// are left out of the checks that need them.
type ReconcileInput struct {
	ProfitLoss    *domain.ProfitLossData
	BalanceSheet  *domain.BalanceSheetData
	CashFlow      *domain.CashFlowData
	EquityChanges *domain.EquityChangesData
	// CashAccountsTotal is the aggregator's cash balance at period end.
	CashAccountsTotal *decimal.Decimal
}

// Reconcile cross-checks the statements of one period. Every failure is
// returned as an error-severity issue; none of them abort generation.
func Reconcile(in ReconcileInput) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}

	if in.EquityChanges != nil && in.BalanceSheet != nil {
		closing := in.EquityChanges.ClosingBalance
		total := in.BalanceSheet.TotalEquity.Amount
		if !accounting.WithinEpsilon(closing, total) {
			issues = append(issues, mismatch("EQUITY_MISMATCH",
				"Closing equity in the statement of changes in equity", closing,
				"total equity in the balance sheet", total, "IAS 1.106"))
		}
	}

	if in.CashFlow != nil && in.CashAccountsTotal != nil {
		closing := in.CashFlow.ClosingCash
		total := accounting.RoundMoney(*in.CashAccountsTotal)
		if !accounting.WithinEpsilon(closing, total) {
			issues = append(issues, mismatch("CASH_MISMATCH",
				"Closing cash in the cash flow statement", closing,
				"the sum of cash account balances", total, "IAS 7.45"))
		}
	}

	if in.ProfitLoss != nil {
		net := in.ProfitLoss.NetIncome.Amount
		if in.CashFlow != nil && !accounting.WithinEpsilon(net, in.CashFlow.NetIncome) {
			issues = append(issues, mismatch("NET_INCOME_MISMATCH",
				"Net income in the statement of profit or loss", net,
				"net income in the cash flow statement", in.CashFlow.NetIncome, "IAS 7.18(b)"))
		}
		if in.EquityChanges != nil && !accounting.WithinEpsilon(net, in.EquityChanges.NetIncome) {
			issues = append(issues, mismatch("NET_INCOME_MISMATCH",
				"Net income in the statement of profit or loss", net,
				"profit in the statement of changes in equity", in.EquityChanges.NetIncome, "IAS 1.106(d)"))
		}
	}
	return issues
}

func mismatch(code, left string, l decimal.Decimal, right string, r decimal.Decimal, ref string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Severity:      domain.SeverityError,
		Code:          code,
		Message:       fmt.Sprintf("%s (%s) does not match %s (%s)", left, l.StringFixed(2), right, r.StringFixed(2)),
		Suggestion:    "Regenerate the statements; if the difference persists, review recent reversals and currency rates",
		IFRSReference: ref,
	}
}
