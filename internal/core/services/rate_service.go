package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/dto"
)

type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new currency rate service.
func NewRateService(repo portsrepo.RateRepositoryFacade, opts ...Option) portssvc.RateSvcFacade {
	svc := &rateService{rateRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	rates, err := s.rateRepo.ListRates(ctx, companyID, domain.DateOf(asOf))
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}

// UpsertRate stores a rate after checking that the table effective on the
// rate's date, with the new rate applied, still has exactly one base at 1.
// The first rate of a company must therefore be its base.
func (s *rateService) UpsertRate(ctx context.Context, companyID string, req dto.UpsertRateRequest, userID string) (*domain.CurrencyRate, error) {
	now := s.Now()
	effective := domain.DateOf(req.EffectiveDate)
	if req.EffectiveDate.IsZero() {
		effective = domain.DateOf(now)
	}

	rate := domain.CurrencyRate{
		CompanyID:     companyID,
		Code:          reporting.NormalizeCurrency(req.Code),
		Rate:          req.Rate,
		IsBase:        req.IsBase,
		EffectiveDate: effective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	current, err := s.ListRates(ctx, companyID, effective)
	if err != nil {
		return nil, err
	}
	table := make([]domain.CurrencyRate, 0, len(current)+1)
	for _, r := range current {
		if reporting.NormalizeCurrency(r.Code) != rate.Code {
			table = append(table, r)
		}
	}
	table = append(table, rate)
	if _, err := reporting.NewRateTable(table); err != nil {
		return nil, err
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save rate", slog.String("company_id", companyID), slog.String("code", rate.Code))
		return nil, fmt.Errorf("failed to save rate: %w", err)
	}

	s.LogInfo(ctx, "Currency rate saved", slog.String("company_id", companyID), slog.String("code", rate.Code), slog.String("rate", rate.Rate.String()))
	return &rate, nil
}
