package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/models"
	"github.com/vickinc/eazybizy/internal/utils/mapping"
)

type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// ListRates returns the latest rate per currency effective on or before asOf.
func (r *PgxRateRepository) ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	query := `
		SELECT DISTINCT ON (currency_code)
		       company_id, currency_code, rate, is_base, effective_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates
		WHERE company_id = $1 AND effective_date <= $2
		ORDER BY currency_code, effective_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, domain.DateOf(asOf))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currency rates for company "+companyID, err)
	}
	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		var m models.CurrencyRate
		if err := row.Scan(
			&m.CompanyID,
			&m.CurrencyCode,
			&m.Rate,
			&m.IsBase,
			&m.EffectiveDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return domain.CurrencyRate{}, err
		}
		return mapping.ToDomainCurrencyRate(m), nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan currency rates for company "+companyID, err)
	}
	return rates, nil
}

// SaveRate inserts a rate or replaces the one with the same code and effective date.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.CurrencyRate) error {
	m := mapping.ToModelCurrencyRate(rate)
	query := `
		INSERT INTO currency_rates (company_id, currency_code, rate, is_base, effective_date,
		                            created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, currency_code, effective_date) DO UPDATE
		SET rate = EXCLUDED.rate, is_base = EXCLUDED.is_base,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.CompanyID, m.CurrencyCode, m.Rate, m.IsBase, m.EffectiveDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save rate for "+m.CurrencyCode, err)
	}
	return nil
}
