package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// CashFlowMethod is the only supported presentation.
const CashFlowMethod = "indirect"

// BuildCashFlow builds the statement of cash flows by the indirect method.
// Operating cash starts from net income, adds back non-cash charges and
// working capital changes. Investing covers non-current assets and financing
// covers non-current liabilities and equity. Other comprehensive income moves
// no cash, so it is netted against the asset movements it revalued
// (IAS 7.43). Closing cash is checked against the balances of the cash
// accounts.
func BuildCashFlow(w *Workbook) domain.StatementResult[domain.CashFlowData] {
	if w.Simplified() {
		return unavailable[domain.CashFlowData](domain.StatementCashFlow, w, simplifiedReason)
	}
	res := newResult[domain.CashFlowData](domain.StatementCashFlow, w)
	r := w.period

	adj := newSection("adjustments", "Adjustments for non-cash items", "IAS 7.20(b)", false)
	wc := newSection("workingCapital", "Changes in working capital", "IAS 7.20(a)", false)
	inv := newSection("investing", "Cash flows from investing activities", "IAS 7.16", false)
	fin := newSection("financing", "Cash flows from financing activities", "IAS 7.17", false)

	oci := decimal.Zero
	for _, acc := range w.accounts {
		c := w.classes[acc.AccountID]
		if c.Bucket.IsIncomeStatement() || c.Cash {
			continue
		}
		d := w.delta(acc.AccountID, r)
		switch {
		case c.Bucket == BucketAsset && c.NonCash:
			adj.add(acc, "", d.Neg(), decimal.Zero)
		case c.Bucket == BucketAsset && c.Classification == domain.ClassificationCurrent:
			wc.add(acc, "", d.Neg(), decimal.Zero)
		case c.Bucket == BucketAsset:
			inv.add(acc, "", d.Neg(), decimal.Zero)
		case c.Bucket == BucketLiability && c.Classification == domain.ClassificationCurrent:
			wc.add(acc, "", d, decimal.Zero)
		case c.Bucket == BucketEquity && c.Equity == EquityOCI:
			oci = oci.Add(d)
		default:
			fin.add(acc, "", d, decimal.Zero)
		}
	}
	inv.addSynthetic("Non-cash revaluation and other comprehensive income", oci, decimal.Zero)
	obe := w.openingBalanceEquity(r.End).Sub(w.openingBalanceEquity(r.DayBefore()))
	fin.addSynthetic("Opening balance equity recognised", obe, decimal.Zero)

	netIncome := w.netIncome(r)
	operating := netIncome.Add(adj.current).Add(wc.current)
	change := operating.Add(inv.current).Add(fin.current)
	opening := w.cashTotal(r.DayBefore())
	closing := opening.Add(change)
	perBalances := w.cashTotal(r.End)

	res.Data = &domain.CashFlowData{
		Company:                w.company,
		Currency:               w.currency,
		Period:                 r,
		Method:                 CashFlowMethod,
		NetIncome:              accounting.RoundMoney(netIncome),
		Adjustments:            adj.build(),
		WorkingCapital:         wc.build(),
		NetCashFromOperating:   accounting.RoundMoney(operating),
		Investing:              inv.build(),
		Financing:              fin.build(),
		NetCashChange:          accounting.RoundMoney(change),
		OpeningCash:            accounting.RoundMoney(opening),
		ClosingCash:            accounting.RoundMoney(closing),
		ClosingCashPerBalances: accounting.RoundMoney(perBalances),
	}

	if diff := closing.Sub(perBalances); !accounting.WithinEpsilon(closing, perBalances) {
		res.Validation = append(res.Validation, domain.ValidationIssue{
			Severity: domain.SeverityError,
			Code:     "CASH_FLOW_MISMATCH",
			Message: fmt.Sprintf("Opening cash plus net change (%s) does not equal closing cash balances (%s); difference %s",
				closing.StringFixed(2), perBalances.StringFixed(2), diff.String()),
			Suggestion:    "Check that every bank and wallet account is classified as cash",
			IFRSReference: "IAS 7.45",
		})
	}
	return res
}
