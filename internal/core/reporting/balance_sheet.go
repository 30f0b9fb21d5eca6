package reporting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/utils/accounting"
)

// BuildBalanceSheet builds the statement of financial position at the end of
// the workbook period. Accumulated profit and opening balance equity are
// computed lines in equity. A failed Assets = Liabilities + Equity check is
// reported as an error issue carrying the difference.
func BuildBalanceSheet(w *Workbook) domain.StatementResult[domain.BalanceSheetData] {
	if w.Simplified() {
		return unavailable[domain.BalanceSheetData](domain.StatementBalanceSheet, w, simplifiedReason)
	}
	res := newResult[domain.BalanceSheetData](domain.StatementBalanceSheet, w)

	asOf := w.period.End
	comparative := w.prior != nil
	var priorAsOf time.Time
	if comparative {
		priorAsOf = w.prior.End
	}

	ca := newSection("currentAssets", "Current assets", "IAS 1.66", comparative)
	nca := newSection("nonCurrentAssets", "Non-current assets", "IAS 1.66", comparative)
	cl := newSection("currentLiabilities", "Current liabilities", "IAS 1.69", comparative)
	ncl := newSection("nonCurrentLiabilities", "Non-current liabilities", "IAS 1.69", comparative)
	eq := newSection("equity", "Equity", "IAS 1.54(r)", comparative)

	for _, acc := range w.accounts {
		c := w.classes[acc.AccountID]
		if c.Bucket.IsIncomeStatement() {
			continue
		}
		current := w.balance(acc.AccountID, asOf)
		prior := decimal.Zero
		if comparative {
			prior = w.balance(acc.AccountID, priorAsOf)
		}
		isCurrent := c.Classification == domain.ClassificationCurrent
		switch {
		case c.Bucket == BucketAsset && isCurrent:
			ca.add(acc, "", current, prior)
		case c.Bucket == BucketAsset:
			nca.add(acc, "", current, prior)
		case c.Bucket == BucketLiability && isCurrent:
			cl.add(acc, "", current, prior)
		case c.Bucket == BucketLiability:
			ncl.add(acc, "", current, prior)
		default:
			eq.add(acc, "", current, prior)
		}
	}

	profit := w.accumulatedProfit(asOf)
	obe := w.openingBalanceEquity(asOf)
	profitPrior, obePrior := decimal.Zero, decimal.Zero
	if comparative {
		profitPrior = w.accumulatedProfit(priorAsOf)
		obePrior = w.openingBalanceEquity(priorAsOf)
	}
	eq.addSynthetic("Accumulated profit or loss", profit, profitPrior)
	eq.addSynthetic("Opening balance equity", obe, obePrior)

	assets := ca.current.Add(nca.current)
	assetsPrior := ca.prior.Add(nca.prior)
	liabilities := cl.current.Add(ncl.current)
	liabilitiesPrior := cl.prior.Add(ncl.prior)
	lAndE := liabilities.Add(eq.current)
	lAndEPrior := liabilitiesPrior.Add(eq.prior)
	diff := assets.Sub(lAndE)

	data := &domain.BalanceSheetData{
		Company:                   w.company,
		Currency:                  w.currency,
		AsOf:                      asOf,
		CurrentAssets:             ca.build(),
		NonCurrentAssets:          nca.build(),
		TotalAssets:               derived(comparative, assets, assetsPrior),
		CurrentLiabilities:        cl.build(),
		NonCurrentLiabilities:     ncl.build(),
		TotalLiabilities:          derived(comparative, liabilities, liabilitiesPrior),
		Equity:                    eq.build(),
		TotalEquity:               derived(comparative, eq.current, eq.prior),
		TotalLiabilitiesAndEquity: derived(comparative, lAndE, lAndEPrior),
		Balanced:                  diff.Abs().LessThan(accounting.Epsilon),
		Difference:                diff,
	}
	if comparative {
		data.PriorAsOf = &priorAsOf
	}

	if !data.Balanced {
		res.Validation = append(res.Validation, domain.ValidationIssue{
			Severity: domain.SeverityError,
			Code:     "BALANCE_SHEET_IMBALANCE",
			Message: fmt.Sprintf("Assets (%s) do not equal liabilities plus equity (%s); difference %s",
				assets.StringFixed(2), lAndE.StringFixed(2), diff.String()),
			Suggestion:    "Look for unbalanced imported journals or initial balances in other currencies",
			IFRSReference: "IAS 1.54",
		})
	}
	if !obe.IsZero() {
		res.Validation = append(res.Validation, domain.ValidationIssue{
			Severity:   domain.SeverityInfo,
			Code:       "OPENING_BALANCE_EQUITY",
			Message:    fmt.Sprintf("Initial balances do not net to zero; %s recognised as opening balance equity", obe.StringFixed(2)),
			Suggestion: "Enter offsetting initial balances for liabilities and equity",
		})
	}

	res.Data = data
	return res
}
