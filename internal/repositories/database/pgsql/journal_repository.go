package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/models"
	"github.com/vickinc/eazybizy/internal/utils/mapping"
	"github.com/vickinc/eazybizy/internal/utils/pagination"
)

const journalColumns = `journal_id, company_id, journal_date, description, currency_code, source_kind, status,
	original_journal_id, reversing_journal_id, amount, created_at, created_by, last_updated_at, last_updated_by`

const transactionColumns = `transaction_id, journal_id, account_id, amount, transaction_type, currency_code, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.CompanyID,
		&m.JournalDate,
		&m.Description,
		&m.CurrencyCode,
		&m.SourceKind,
		&m.Status,
		&m.OriginalJournalID,
		&m.ReversingJournalID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.JournalID,
		&t.AccountID,
		&t.Amount,
		&t.TransactionType,
		&t.CurrencyCode,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

func collectJournals(rows pgx.Rows) ([]domain.Journal, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Journal, error) {
		m, err := scanJournal(row)
		if err != nil {
			return domain.Journal{}, err
		}
		return mapping.ToDomainJournal(m), nil
	})
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		t, err := scanTransaction(row)
		if err != nil {
			return domain.Transaction{}, err
		}
		return mapping.ToDomainTransaction(t), nil
	})
}

// insertJournal queues a journal and its lines on tx.
func insertJournal(ctx context.Context, tx pgx.Tx, journal domain.Journal, transactions []domain.Transaction) error {
	m := mapping.ToModelJournal(journal)
	batch := &pgx.Batch{}
	batch.Queue(`INSERT INTO journals (`+journalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.JournalID, m.CompanyID, m.JournalDate, m.Description, m.CurrencyCode, m.SourceKind, m.Status,
		m.OriginalJournalID, m.ReversingJournalID, m.Amount, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	txnQuery := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	for _, txn := range transactions {
		t := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
			t.TransactionID, t.JournalID, t.AccountID, t.Amount, t.TransactionType, t.CurrencyCode, t.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}
	return nil
}

// SaveJournal saves a journal and its transactions within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if err := insertJournal(ctx, tx, journal, transactions); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveReversal inserts the reversal and links it to the original.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, original domain.Journal, reversal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournal(ctx, tx, reversal, transactions); err != nil {
		return err
	}
	if err := markReversed(ctx, tx, original, reversal.JournalID); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveSupersede reverses the original and posts its replacement in one
// transaction, so a failed replacement also rolls back the reversal.
func (r *PgxJournalRepository) SaveSupersede(ctx context.Context, original domain.Journal, reversal domain.Journal, reversalTxns []domain.Transaction, replacement domain.Journal, replacementTxns []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournal(ctx, tx, reversal, reversalTxns); err != nil {
		return err
	}
	if err := markReversed(ctx, tx, original, reversal.JournalID); err != nil {
		return err
	}
	if err := insertJournal(ctx, tx, replacement, replacementTxns); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// markReversed links the original to its reversal. The row is updated only
// while it is still posted and unreversed, so two concurrent reversals
// cannot both succeed.
func markReversed(ctx context.Context, tx pgx.Tx, original domain.Journal, reversalID string) error {
	query := `
		UPDATE journals
		SET status = $3, reversing_journal_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND journal_id = $2 AND status = 'POSTED' AND reversing_journal_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, original.CompanyID, original.JournalID, string(domain.Reversed),
		reversalID, original.LastUpdatedAt, original.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal "+original.JournalID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is already reversed", apperrors.ErrConflict, original.JournalID)
	}
	return nil
}

// FindJournalByID retrieves a journal of a company by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE company_id = $1 AND journal_id = $2;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, companyID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}
	j := mapping.ToDomainJournal(m)
	return &j, nil
}

// ListJournals retrieves a page of journals, newest first, using keyset pagination.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + journalColumns + ` FROM journals WHERE company_id = $1`
	if !includeReversals {
		query += ` AND status != 'REVERSED' AND original_journal_id IS NULL`
	}
	args := []any{companyID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (journal_date, created_at, journal_id) < ($2, $3, $4)`
		args = append(args, cursor.JournalDate, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY journal_date DESC, created_at DESC, journal_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for company "+companyID, err)
	}
	journals, err := collectJournals(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan journals for company "+companyID, err)
	}

	var next *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{JournalDate: last.JournalDate, CreatedAt: last.CreatedAt, ID: last.JournalID})
		next = &token
	}
	return journals, next, nil
}

// FindJournalsUpTo loads every journal dated on or before asOf together with
// its lines. Reversed originals and their reversals are both returned.
func (r *PgxJournalRepository) FindJournalsUpTo(ctx context.Context, companyID string, asOf time.Time) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals
		WHERE company_id = $1 AND journal_date <= $2
		ORDER BY journal_date, created_at, journal_id;`
	rows, err := r.Pool.Query(ctx, query, companyID, domain.DateOf(asOf))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journals for company "+companyID, err)
	}
	journals, err := collectJournals(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journals for company "+companyID, err)
	}
	if len(journals) == 0 {
		return journals, nil
	}

	lineQuery := `SELECT t.transaction_id, t.journal_id, t.account_id, t.amount, t.transaction_type, t.currency_code, t.notes,
			t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE j.company_id = $1 AND j.journal_date <= $2
		ORDER BY t.journal_id, t.transaction_id;`
	rows, err = r.Pool.Query(ctx, lineQuery, companyID, domain.DateOf(asOf))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for company "+companyID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions for company "+companyID, err)
	}

	byJournal := make(map[string][]domain.Transaction, len(journals))
	for _, t := range txns {
		byJournal[t.JournalID] = append(byJournal[t.JournalID], t)
	}
	for i := range journals {
		journals[i].Transactions = byJournal[journals[i].JournalID]
	}
	return journals, nil
}

// UpdateJournal updates the description of a journal.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	query := `
		UPDATE journals
		SET description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND journal_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, journal.CompanyID, journal.JournalID, journal.Description,
		journal.LastUpdatedAt, journal.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal "+journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journal.JournalID)
	}
	return nil
}

// FindTransactionsByJournalID retrieves all transactions associated with a specific journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_id = $1 ORDER BY transaction_id;`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for journal "+journalID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions for journal "+journalID, err)
	}
	return txns, nil
}

// FindTransactionsByJournalIDs retrieves transactions for multiple journals, grouped by journal ID.
func (r *PgxJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	result := make(map[string][]domain.Transaction, len(journalIDs))
	if len(journalIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE journal_id = ANY($1) ORDER BY journal_id, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for journals", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions for journals", err)
	}
	for _, t := range txns {
		result[t.JournalID] = append(result[t.JournalID], t)
	}
	return result, nil
}
