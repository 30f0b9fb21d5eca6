package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

// BuildProfitLoss builds the statement of profit or loss for the workbook
// period. Income tax is shown below profit before tax when the company's
// settings say so, otherwise it is an operating expense.
func BuildProfitLoss(w *Workbook) domain.StatementResult[domain.ProfitLossData] {
	res := newResult[domain.ProfitLossData](domain.StatementProfitLoss, w)
	comparative := w.prior != nil

	sections := map[Bucket]*sectionBuilder{
		BucketRevenue:          newSection("revenue", "Revenue", "IAS 1.82(a)", comparative),
		BucketCostOfSales:      newSection("costOfSales", "Cost of sales", "IAS 1.103", comparative),
		BucketOperatingExpense: newSection("operatingExpenses", "Operating expenses", "IAS 1.99", comparative),
		BucketOtherIncome:      newSection("otherIncome", "Other income", "IAS 1.85", comparative),
		BucketOtherExpense:     newSection("otherExpenses", "Finance and other costs", "IAS 1.82(b)", comparative),
		BucketIncomeTax:        newSection("incomeTax", "Income tax expense", "IAS 1.82(d)", comparative),
	}

	for _, acc := range w.accounts {
		c := w.classes[acc.AccountID]
		if !c.Bucket.IsIncomeStatement() {
			continue
		}
		bucket := c.Bucket
		if bucket == BucketIncomeTax && !w.settings.IFRS.TaxBelowTheLine {
			bucket = BucketOperatingExpense
		}
		current := w.movement(acc.AccountID, w.period)
		prior := decimal.Zero
		if comparative {
			prior = w.movement(acc.AccountID, *w.prior)
		}
		sections[bucket].add(acc, "", current, prior)
	}

	rev, cogs := sections[BucketRevenue], sections[BucketCostOfSales]
	opex, oi, oe := sections[BucketOperatingExpense], sections[BucketOtherIncome], sections[BucketOtherExpense]
	tax := sections[BucketIncomeTax]

	gross := rev.current.Sub(cogs.current)
	grossPrior := rev.prior.Sub(cogs.prior)
	operating := gross.Sub(opex.current)
	operatingPrior := grossPrior.Sub(opex.prior)
	pbt := operating.Add(oi.current).Sub(oe.current)
	pbtPrior := operatingPrior.Add(oi.prior).Sub(oe.prior)
	net := pbt.Sub(tax.current)
	netPrior := pbtPrior.Sub(tax.prior)

	res.Data = &domain.ProfitLossData{
		Company:           w.company,
		Currency:          w.currency,
		Period:            w.period,
		PriorPeriod:       w.prior,
		Revenue:           rev.build(),
		CostOfSales:       cogs.build(),
		GrossProfit:       derived(comparative, gross, grossPrior),
		OperatingExpenses: opex.build(),
		OperatingProfit:   derived(comparative, operating, operatingPrior),
		OtherIncome:       oi.build(),
		OtherExpenses:     oe.build(),
		ProfitBeforeTax:   derived(comparative, pbt, pbtPrior),
		IncomeTax:         tax.build(),
		NetIncome:         derived(comparative, net, netPrior),
	}
	return res
}
