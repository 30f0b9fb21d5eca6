package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// snapshot is everything read from storage for one statement or balance run.
type snapshot struct {
	accounts []domain.Account
	periods  []domain.Period
	journals []domain.Journal
	initials []domain.InitialBalance
	rates    []domain.CurrencyRate
}

// snapshotLoader reads a company's ledger state up to a date. The reads are
// independent and run concurrently; the first failure cancels the rest.
type snapshotLoader struct {
	accounts portsrepo.AccountReader
	periods  portsrepo.PeriodRepositoryFacade
	journals portsrepo.JournalReader
	initials portsrepo.InitialBalanceRepositoryFacade
	rates    portsrepo.RateRepositoryFacade
}

func newSnapshotLoader(repos portsrepo.RepositoryProvider) snapshotLoader {
	return snapshotLoader{
		accounts: repos.AccountRepo,
		periods:  repos.PeriodRepo,
		journals: repos.JournalRepo,
		initials: repos.InitialBalanceRepo,
		rates:    repos.RateRepo,
	}
}

func (l snapshotLoader) load(ctx context.Context, companyID string, asOf time.Time) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if snap.accounts, err = l.accounts.ListAccounts(gctx, companyID); err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.periods, err = l.periods.ListPeriods(gctx, companyID); err != nil {
			return fmt.Errorf("failed to load periods: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.journals, err = l.journals.FindJournalsUpTo(gctx, companyID, asOf); err != nil {
			return fmt.Errorf("failed to load journals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.initials, err = l.initials.ListInitialBalances(gctx, companyID); err != nil {
			return fmt.Errorf("failed to load initial balances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.rates, err = l.rates.ListRates(gctx, companyID, asOf); err != nil {
			return fmt.Errorf("failed to load currency rates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// rateTableOrBase returns rates, or a one-entry table holding only the
// reporting currency when the company has not recorded any rates yet.
func rateTableOrBase(rates []domain.CurrencyRate, currency string) []domain.CurrencyRate {
	if len(rates) > 0 {
		return rates
	}
	return []domain.CurrencyRate{{Code: currency, Rate: decimal.NewFromInt(1), IsBase: true}}
}
