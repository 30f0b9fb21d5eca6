package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/models"
	"github.com/vickinc/eazybizy/internal/utils/mapping"
)

const periodColumns = `period_id, company_id, name, start_date, end_date, fiscal_year, period_type, status,
	closed_at, closed_by, reopened_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.PeriodID,
		&m.CompanyID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.FiscalYear,
		&m.PeriodType,
		&m.Status,
		&m.ClosedAt,
		&m.ClosedBy,
		&m.ReopenedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID, m.CompanyID, m.Name, m.StartDate, m.EndDate, m.FiscalYear, m.PeriodType, m.Status,
		m.ClosedAt, m.ClosedBy, m.ReopenedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, m.PeriodID)
		}
		return apperrors.NewAppError(500, "failed to save period "+m.PeriodID, err)
	}
	return nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE company_id = $1 AND period_id = $2;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, companyID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
		}
		return nil, apperrors.NewAppError(500, "failed to find period "+periodID, err)
	}
	p := mapping.ToDomainPeriod(m)
	return &p, nil
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE company_id = $1 ORDER BY start_date, period_id;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list periods for company "+companyID, err)
	}
	periods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Period, error) {
		m, err := scanPeriod(row)
		if err != nil {
			return domain.Period{}, err
		}
		return mapping.ToDomainPeriod(m), nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan periods for company "+companyID, err)
	}
	return periods, nil
}

func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `
		UPDATE accounting_periods
		SET status = $3, closed_at = $4, closed_by = $5, reopened_at = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE company_id = $1 AND period_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CompanyID, m.PeriodID, m.Status, m.ClosedAt, m.ClosedBy, m.ReopenedAt,
		m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update period "+m.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: period %s", apperrors.ErrNotFound, m.PeriodID)
	}
	return nil
}
