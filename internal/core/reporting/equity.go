package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// BuildEquityChanges builds the statement of changes in equity. Opening
// equity is total equity on the day before the period starts, which is zero
// for a company's first period.
func BuildEquityChanges(w *Workbook) domain.StatementResult[domain.EquityChangesData] {
	if w.Simplified() {
		return unavailable[domain.EquityChangesData](domain.StatementEquityChanges, w, simplifiedReason)
	}
	res := newResult[domain.EquityChangesData](domain.StatementEquityChanges, w)
	r := w.period

	opening := w.equityTotal(r.DayBefore())
	netIncome := w.netIncome(r)
	obe := w.openingBalanceEquity(r.End).Sub(w.openingBalanceEquity(r.DayBefore()))

	moves := newSection("movements", "Movements", "IAS 1.106", false)
	components := map[EquityComponent]decimal.Decimal{}
	for _, acc := range w.accounts {
		c := w.classes[acc.AccountID]
		if c.Bucket != BucketEquity {
			continue
		}
		d := w.delta(acc.AccountID, r)
		components[c.Equity] = components[c.Equity].Add(d)
		moves.add(acc, "", d, decimal.Zero)
	}
	moves.addSynthetic("Profit or loss for the period", netIncome, decimal.Zero)
	moves.addSynthetic("Opening balance equity recognised", obe, decimal.Zero)

	closing := opening.Add(moves.current)

	res.Data = &domain.EquityChangesData{
		Company:                   w.company,
		Currency:                  w.currency,
		Period:                    r,
		OpeningBalance:            accounting.RoundMoney(opening),
		NetIncome:                 accounting.RoundMoney(netIncome),
		CapitalContributions:      accounting.RoundMoney(components[EquityContribution]),
		Distributions:             accounting.RoundMoney(components[EquityDistribution]),
		OtherComprehensiveIncome:  accounting.RoundMoney(components[EquityOCI]),
		OpeningBalanceAdjustments: accounting.RoundMoney(obe),
		OtherMovements:            accounting.RoundMoney(components[EquityOther]),
		Movements:                 moves.build().Lines,
		ClosingBalance:            accounting.RoundMoney(closing),
	}
	return res
}
