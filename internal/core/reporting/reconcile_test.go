package reporting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

func TestReconcile_Consistent(t *testing.T) {
	cash := dec("10000")
	in := reporting.ReconcileInput{
		ProfitLoss:        &domain.ProfitLossData{NetIncome: domain.Figure{Amount: decimal.Zero}},
		BalanceSheet:      &domain.BalanceSheetData{TotalEquity: domain.Figure{Amount: dec("6000")}},
		CashFlow:          &domain.CashFlowData{NetIncome: decimal.Zero, ClosingCash: dec("10000")},
		EquityChanges:     &domain.EquityChangesData{NetIncome: decimal.Zero, ClosingBalance: dec("6000.004")},
		CashAccountsTotal: &cash,
	}
	assert.Empty(t, reporting.Reconcile(in))
}

func TestReconcile_Mismatches(t *testing.T) {
	cash := dec("9999.98")
	in := reporting.ReconcileInput{
		ProfitLoss:        &domain.ProfitLossData{NetIncome: domain.Figure{Amount: dec("100")}},
		BalanceSheet:      &domain.BalanceSheetData{TotalEquity: domain.Figure{Amount: dec("6000")}},
		CashFlow:          &domain.CashFlowData{NetIncome: dec("100"), ClosingCash: dec("10000")},
		EquityChanges:     &domain.EquityChangesData{NetIncome: dec("90"), ClosingBalance: dec("6000.01")},
		CashAccountsTotal: &cash,
	}

	issues := reporting.Reconcile(in)
	assert.Equal(t, []string{"EQUITY_MISMATCH", "CASH_MISMATCH", "NET_INCOME_MISMATCH"}, issueCodes(issues))
	for _, i := range issues {
		assert.Equal(t, domain.SeverityError, i.Severity)
	}
}

func TestReconcile_SkipsMissingStatements(t *testing.T) {
	in := reporting.ReconcileInput{
		ProfitLoss: &domain.ProfitLossData{NetIncome: domain.Figure{Amount: dec("100")}},
	}
	assert.Empty(t, reporting.Reconcile(in))
}
