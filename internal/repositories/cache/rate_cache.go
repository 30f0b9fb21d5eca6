package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
)

// RateRepository caches rate tables per company and as-of date. Any write
// for a company drops all of that company's entries.
type RateRepository struct {
	next  portsrepo.RateRepositoryFacade
	cache *expirable.LRU[string, []domain.CurrencyRate]
}

// NewRateRepository wraps next with an expiring LRU cache.
func NewRateRepository(next portsrepo.RateRepositoryFacade, size int, ttl time.Duration) *RateRepository {
	return &RateRepository{
		next:  next,
		cache: expirable.NewLRU[string, []domain.CurrencyRate](size, nil, ttl),
	}
}

var _ portsrepo.RateRepositoryFacade = (*RateRepository)(nil)

func rateKey(companyID string, asOf time.Time) string {
	return companyID + "|" + domain.DateOf(asOf).Format(time.DateOnly)
}

func (r *RateRepository) ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	key := rateKey(companyID, asOf)
	if rates, ok := r.cache.Get(key); ok {
		return cloneSlice(rates), nil
	}
	rates, err := r.next.ListRates(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}
	r.cache.Add(key, cloneSlice(rates))
	return rates, nil
}

func (r *RateRepository) SaveRate(ctx context.Context, rate domain.CurrencyRate) error {
	err := r.next.SaveRate(ctx, rate)
	r.invalidate(rate.CompanyID)
	return err
}

func (r *RateRepository) invalidate(companyID string) {
	prefix := companyID + "|"
	for _, k := range r.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			r.cache.Remove(k)
		}
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
