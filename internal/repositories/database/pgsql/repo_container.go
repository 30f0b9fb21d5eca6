package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/repositories/cache"
)

// CacheOptions size the read-through caches. A non-positive Size disables them.
type CacheOptions struct {
	Size       int
	RateTTL    time.Duration
	AccountTTL time.Duration
}

func NewRepositoryProvider(dbPool *pgxpool.Pool, opts CacheOptions) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)
	if opts.Size > 0 {
		accountRepo = cache.NewAccountRepository(accountRepo, opts.Size, opts.AccountTTL)
		rateRepo = cache.NewRateRepository(rateRepo, opts.Size, opts.RateTTL)
	}

	return portsrepo.RepositoryProvider{
		CompanyRepo:        newPgxCompanyRepository(dbPool),
		AccountRepo:        accountRepo,
		JournalRepo:        newPgxJournalRepository(dbPool),
		PeriodRepo:         newPgxPeriodRepository(dbPool),
		RateRepo:           rateRepo,
		InitialBalanceRepo: newPgxInitialBalanceRepository(dbPool),
	}
}
