package reporting

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// GenerateBundle prepares the workbook, runs the four builders concurrently
// and reconciles them once all have finished. A cancelled context yields
// ctx.Err() and no bundle.
func GenerateBundle(ctx context.Context, in Input) (*domain.StatementBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, err := Prepare(in)
	if err != nil {
		return nil, err
	}
	return w.Bundle(ctx)
}

// Bundle builds and reconciles every statement over a prepared workbook.
func (w *Workbook) Bundle(ctx context.Context) (*domain.StatementBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &domain.StatementBundle{
		CompanyID:   w.companyID,
		Currency:    w.currency,
		Period:      w.period,
		PriorPeriod: w.prior,
		GeneratedAt: w.now,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.ProfitLoss = BuildProfitLoss(w)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.BalanceSheet = BuildBalanceSheet(w)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.CashFlow = BuildCashFlow(w)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.EquityChanges = BuildEquityChanges(w)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := ReconcileInput{
		ProfitLoss:    availableData(b.ProfitLoss),
		BalanceSheet:  availableData(b.BalanceSheet),
		CashFlow:      availableData(b.CashFlow),
		EquityChanges: availableData(b.EquityChanges),
	}
	if !w.Simplified() {
		cash, err := w.CashAccountsTotal(w.period.End)
		if err != nil {
			return nil, err
		}
		in.CashAccountsTotal = &cash
	}
	b.Reconciliation = Reconcile(in)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func availableData[T any](r domain.StatementResult[T]) *T {
	if !r.Available {
		return nil
	}
	return r.Data
}
