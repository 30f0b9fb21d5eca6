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

const companyColumns = `company_id, name, legal_name, registration_number, country,
	reporting_currency, fiscal_year_start_month, fiscal_year_start_day, accounting_mode,
	tax_below_the_line, show_comparatives, stale_transaction_days,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.LegalName,
		&m.RegistrationNumber,
		&m.Country,
		&m.ReportingCurrency,
		&m.FiscalYearStartMonth,
		&m.FiscalYearStartDay,
		&m.AccountingMode,
		&m.TaxBelowTheLine,
		&m.ShowComparatives,
		&m.StaleTransactionDays,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.LegalName, m.RegistrationNumber, m.Country,
		m.ReportingCurrency, m.FiscalYearStartMonth, m.FiscalYearStartDay, m.AccountingMode,
		m.TaxBelowTheLine, m.ShowComparatives, m.StaleTransactionDays,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company %s", apperrors.ErrDuplicate, m.CompanyID)
		}
		return apperrors.NewAppError(500, "failed to save company "+m.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %s", apperrors.ErrNotFound, companyID)
		}
		return nil, apperrors.NewAppError(500, "failed to find company "+companyID, err)
	}
	c := mapping.ToDomainCompany(m)
	return &c, nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name, company_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list companies", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan companies", err)
	}

	companies := make([]domain.Company, len(ms))
	for i, m := range ms {
		companies[i] = mapping.ToDomainCompany(m)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET name = $2, legal_name = $3, registration_number = $4, country = $5,
		    reporting_currency = $6, fiscal_year_start_month = $7, fiscal_year_start_day = $8,
		    accounting_mode = $9, tax_below_the_line = $10, show_comparatives = $11,
		    stale_transaction_days = $12, last_updated_at = $13, last_updated_by = $14
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.LegalName, m.RegistrationNumber, m.Country,
		m.ReportingCurrency, m.FiscalYearStartMonth, m.FiscalYearStartDay,
		m.AccountingMode, m.TaxBelowTheLine, m.ShowComparatives,
		m.StaleTransactionDays, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+m.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: company %s", apperrors.ErrNotFound, m.CompanyID)
	}
	return nil
}
