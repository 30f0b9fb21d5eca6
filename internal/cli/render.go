package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

const ruleWidth = 60

// renderText prints a statement result or bundle as a plain text report.
func renderText(out io.Writer, result any) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	p := &printer{w: tw}

	switch r := result.(type) {
	case *domain.StatementResult[domain.ProfitLossData]:
		p.profitLoss(*r)
	case *domain.StatementResult[domain.BalanceSheetData]:
		p.balanceSheet(*r)
	case *domain.StatementResult[domain.CashFlowData]:
		p.cashFlow(*r)
	case *domain.StatementResult[domain.EquityChangesData]:
		p.equityChanges(*r)
	case *domain.StatementBundle:
		p.profitLoss(r.ProfitLoss)
		p.balanceSheet(r.BalanceSheet)
		p.cashFlow(r.CashFlow)
		p.equityChanges(r.EquityChanges)
		p.issues("RECONCILIATION", r.Reconciliation)
	default:
		return fmt.Errorf("cannot render %T as text", result)
	}
	return tw.Flush()
}

type printer struct {
	w io.Writer
}

func (p *printer) title(name string, unavailable string) bool {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, name+"\t")
	fmt.Fprintln(p.w, strings.Repeat("=", len(name))+"\t")
	if unavailable != "" {
		fmt.Fprintf(p.w, "Not available: %s\t\n", unavailable)
		return false
	}
	return true
}

func (p *printer) row(label string, amount decimal.Decimal) {
	fmt.Fprintf(p.w, "%s\t%15s\t\n", label, amount.StringFixed(2))
}

func (p *printer) section(s domain.StatementSection) {
	if len(s.Lines) == 0 {
		return
	}
	fmt.Fprintf(p.w, "%s\t\t\n", s.Label)
	for _, l := range s.Lines {
		p.row("  "+l.Name, l.Amount)
	}
	p.row("Total "+strings.ToLower(s.Label), s.Total.Amount)
}

func (p *printer) rule() {
	fmt.Fprintf(p.w, "%s\t\t\n", strings.Repeat("-", ruleWidth/2))
}

func (p *printer) profitLoss(r domain.StatementResult[domain.ProfitLossData]) {
	if !p.title("STATEMENT OF PROFIT OR LOSS", r.UnavailableReason) || r.Data == nil {
		p.issues("VALIDATION", r.Validation)
		return
	}
	d := r.Data
	fmt.Fprintf(p.w, "%s  %s  %s\t\n", d.Company.Name, periodLabel(d.Period), d.Currency)
	p.section(d.Revenue)
	p.section(d.CostOfSales)
	p.row("Gross profit", d.GrossProfit.Amount)
	p.section(d.OperatingExpenses)
	p.row("Operating profit", d.OperatingProfit.Amount)
	p.section(d.OtherIncome)
	p.section(d.OtherExpenses)
	p.row("Profit before tax", d.ProfitBeforeTax.Amount)
	p.section(d.IncomeTax)
	p.rule()
	p.row("Net income", d.NetIncome.Amount)
	p.issues("VALIDATION", r.Validation)
}

func (p *printer) balanceSheet(r domain.StatementResult[domain.BalanceSheetData]) {
	if !p.title("STATEMENT OF FINANCIAL POSITION", r.UnavailableReason) || r.Data == nil {
		p.issues("VALIDATION", r.Validation)
		return
	}
	d := r.Data
	fmt.Fprintf(p.w, "%s  as of %s  %s\t\n", d.Company.Name, d.AsOf.Format(time.DateOnly), d.Currency)
	p.section(d.CurrentAssets)
	p.section(d.NonCurrentAssets)
	p.row("Total assets", d.TotalAssets.Amount)
	p.section(d.CurrentLiabilities)
	p.section(d.NonCurrentLiabilities)
	p.row("Total liabilities", d.TotalLiabilities.Amount)
	p.section(d.Equity)
	p.row("Total equity", d.TotalEquity.Amount)
	p.rule()
	p.row("Total liabilities and equity", d.TotalLiabilitiesAndEquity.Amount)
	if d.Balanced {
		fmt.Fprintln(p.w, "[BALANCED]\t")
	} else {
		fmt.Fprintf(p.w, "[UNBALANCED by %s]\t\n", d.Difference.StringFixed(2))
	}
	p.issues("VALIDATION", r.Validation)
}

func (p *printer) cashFlow(r domain.StatementResult[domain.CashFlowData]) {
	if !p.title("STATEMENT OF CASH FLOWS", r.UnavailableReason) || r.Data == nil {
		p.issues("VALIDATION", r.Validation)
		return
	}
	d := r.Data
	fmt.Fprintf(p.w, "%s  %s  %s (%s)\t\n", d.Company.Name, periodLabel(d.Period), d.Currency, d.Method)
	p.row("Net income", d.NetIncome)
	p.section(d.Adjustments)
	p.section(d.WorkingCapital)
	p.row("Net cash from operating activities", d.NetCashFromOperating)
	p.section(d.Investing)
	p.section(d.Financing)
	p.rule()
	p.row("Net change in cash", d.NetCashChange)
	p.row("Opening cash", d.OpeningCash)
	p.row("Closing cash", d.ClosingCash)
	p.issues("VALIDATION", r.Validation)
}

func (p *printer) equityChanges(r domain.StatementResult[domain.EquityChangesData]) {
	if !p.title("STATEMENT OF CHANGES IN EQUITY", r.UnavailableReason) || r.Data == nil {
		p.issues("VALIDATION", r.Validation)
		return
	}
	d := r.Data
	fmt.Fprintf(p.w, "%s  %s  %s\t\n", d.Company.Name, periodLabel(d.Period), d.Currency)
	p.row("Opening balance", d.OpeningBalance)
	p.row("Net income", d.NetIncome)
	p.row("Capital contributions", d.CapitalContributions)
	p.row("Distributions", d.Distributions)
	p.row("Other comprehensive income", d.OtherComprehensiveIncome)
	p.row("Opening balance adjustments", d.OpeningBalanceAdjustments)
	p.row("Other movements", d.OtherMovements)
	p.rule()
	p.row("Closing balance", d.ClosingBalance)
	p.issues("VALIDATION", r.Validation)
}

func (p *printer) issues(heading string, issues []domain.ValidationIssue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(p.w, "%s\t\n", heading)
	for _, i := range issues {
		fmt.Fprintf(p.w, "  [%s] %s: %s\t\n", strings.ToUpper(string(i.Severity)), i.Code, i.Message)
	}
}

func periodLabel(r domain.DateRange) string {
	return r.Start.Format(time.DateOnly) + " to " + r.End.Format(time.DateOnly)
}
