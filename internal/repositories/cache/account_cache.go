package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
)

// AccountRepository caches a company's chart of accounts. Single account
// lookups are served from the cached chart when it is present.
type AccountRepository struct {
	next  portsrepo.AccountRepositoryFacade
	cache *expirable.LRU[string, []domain.Account]
}

// NewAccountRepository wraps next with an expiring LRU cache keyed by company.
func NewAccountRepository(next portsrepo.AccountRepositoryFacade, size int, ttl time.Duration) *AccountRepository {
	return &AccountRepository{
		next:  next,
		cache: expirable.NewLRU[string, []domain.Account](size, nil, ttl),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	if accounts, ok := r.cache.Get(companyID); ok {
		return cloneSlice(accounts), nil
	}
	accounts, err := r.next.ListAccounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	r.cache.Add(companyID, cloneSlice(accounts))
	return accounts, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	if accounts, ok := r.cache.Get(companyID); ok {
		for _, a := range accounts {
			if a.AccountID == accountID {
				return &a, nil
			}
		}
	}
	return r.next.FindAccountByID(ctx, companyID, accountID)
}

func (r *AccountRepository) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	return r.next.FindAccountByCode(ctx, companyID, code)
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	defer r.cache.Remove(account.CompanyID)
	return r.next.SaveAccount(ctx, account)
}

func (r *AccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	for _, a := range accounts {
		defer r.cache.Remove(a.CompanyID)
	}
	return r.next.SaveAccounts(ctx, accounts)
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	defer r.cache.Remove(account.CompanyID)
	return r.next.UpdateAccount(ctx, account)
}

func (r *AccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error {
	defer r.cache.Remove(companyID)
	return r.next.DeactivateAccount(ctx, companyID, accountID, userID, now)
}
