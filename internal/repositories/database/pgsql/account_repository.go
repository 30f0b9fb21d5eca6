package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/models"
	"github.com/vickinc/eazybizy/internal/utils/mapping"
)

const accountColumns = `account_id, company_id, code, name, account_type, category, classification,
	kind, currency_code, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

const insertAccountQuery = `INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Category,
		&m.Classification,
		&m.Kind,
		&m.CurrencyCode,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func accountArgs(m models.Account) []any {
	return []any{
		m.AccountID, m.CompanyID, m.Code, m.Name, m.AccountType, m.Category, m.Classification,
		m.Kind, m.CurrencyCode, m.Description, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

// SaveAccount inserts a new account. Codes are unique per company.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	if _, err := r.Pool.Exec(ctx, insertAccountQuery, accountArgs(m)...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// SaveAccounts inserts several accounts in one database transaction.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(insertAccountQuery, accountArgs(mapping.ToModelAccount(a))...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account code already in use", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert accounts", err)
	}
	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account of a company by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	return r.findOne(ctx, query, companyID, accountID)
}

// FindAccountByCode retrieves an account of a company by its chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND code = $2;`
	return r.findOne(ctx, query, companyID, code)
}

func (r *PgxAccountRepository) findOne(ctx context.Context, query, companyID, key string) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", key, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves every account of a company ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts for company %s: %w", companyID, err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the descriptive fields of an account. Type and kind are fixed.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, category = $4, classification = $5, description = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE company_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CompanyID, m.AccountID, m.Name, m.Category, m.Classification,
		m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND account_id = $2 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: active account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
