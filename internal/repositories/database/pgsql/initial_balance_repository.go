package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/models"
	"github.com/vickinc/eazybizy/internal/utils/mapping"
)

type PgxInitialBalanceRepository struct {
	BaseRepository
}

func newPgxInitialBalanceRepository(pool *pgxpool.Pool) portsrepo.InitialBalanceRepositoryFacade {
	return &PgxInitialBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InitialBalanceRepositoryFacade = (*PgxInitialBalanceRepository)(nil)

// SaveInitialBalance upserts on (account, currency); an account has at most
// one opening balance per currency.
func (r *PgxInitialBalanceRepository) SaveInitialBalance(ctx context.Context, balance domain.InitialBalance) error {
	m := mapping.ToModelInitialBalance(balance)
	query := `
		INSERT INTO initial_balances (initial_balance_id, company_id, account_id, currency_code, amount, effective_date,
		                              created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, account_id, currency_code) DO UPDATE
		SET amount = EXCLUDED.amount, effective_date = EXCLUDED.effective_date,
		    last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, m.InitialBalanceID, m.CompanyID, m.AccountID, m.CurrencyCode, m.Amount,
		m.EffectiveDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save initial balance of "+m.AccountID, err)
	}
	return nil
}

func (r *PgxInitialBalanceRepository) ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error) {
	query := `
		SELECT initial_balance_id, company_id, account_id, currency_code, amount, effective_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM initial_balances
		WHERE company_id = $1
		ORDER BY account_id, currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query initial balances for company "+companyID, err)
	}
	balances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InitialBalance, error) {
		var m models.InitialBalance
		if err := row.Scan(
			&m.InitialBalanceID,
			&m.CompanyID,
			&m.AccountID,
			&m.CurrencyCode,
			&m.Amount,
			&m.EffectiveDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return domain.InitialBalance{}, err
		}
		return mapping.ToDomainInitialBalance(m), nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan initial balances for company "+companyID, err)
	}
	return balances, nil
}
