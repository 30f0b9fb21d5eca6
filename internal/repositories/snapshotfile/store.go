// Package snapshotfile serves a company's ledger from a YAML snapshot file.
// It backs offline statement runs and is read-only.
package snapshotfile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/utils/pagination"
	"gopkg.in/yaml.v2"
)

const defaultPageSize = 20

// ErrReadOnly is returned by every write on a Store.
var ErrReadOnly = fmt.Errorf("%w: snapshot store is read-only", apperrors.ErrForbidden)

// Store holds one company's ledger loaded from a snapshot.
type Store struct {
	company  domain.Company
	accounts []domain.Account
	periods  []domain.Period
	rates    []domain.CurrencyRate
	initials []domain.InitialBalance
	journals []domain.Journal
}

var (
	_ portsrepo.CompanyRepositoryFacade        = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade        = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade        = (*Store)(nil)
	_ portsrepo.PeriodRepositoryFacade         = (*Store)(nil)
	_ portsrepo.RateRepositoryFacade           = (*Store)(nil)
	_ portsrepo.InitialBalanceRepositoryFacade = (*Store)(nil)
)

// Load reads and parses a snapshot file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML snapshot.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid snapshot: %v", apperrors.ErrValidation, err)
	}
	return fromDocument(doc)
}

// CompanyID returns the ID of the snapshot's company.
func (s *Store) CompanyID() string { return s.company.CompanyID }

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:        s,
		AccountRepo:        s,
		JournalRepo:        s,
		PeriodRepo:         s,
		RateRepo:           s,
		InitialBalanceRepo: s,
	}
}

func (s *Store) owns(companyID string) error {
	if companyID != s.company.CompanyID {
		return fmt.Errorf("%w: company %s", apperrors.ErrNotFound, companyID)
	}
	return nil
}

func (s *Store) SaveCompany(context.Context, domain.Company) error { return ErrReadOnly }

func (s *Store) FindCompanyByID(_ context.Context, companyID string) (*domain.Company, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	c := s.company
	return &c, nil
}

func (s *Store) ListCompanies(_ context.Context, limit, offset int) ([]domain.Company, error) {
	if offset > 0 || limit == 0 {
		return []domain.Company{}, nil
	}
	return []domain.Company{s.company}, nil
}

func (s *Store) UpdateCompany(context.Context, domain.Company) error { return ErrReadOnly }

func (s *Store) FindAccountByID(_ context.Context, companyID, accountID string) (*domain.Account, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	for i := range s.accounts {
		if s.accounts[i].AccountID == accountID {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
}

func (s *Store) FindAccountByCode(_ context.Context, companyID, code string) (*domain.Account, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	for i := range s.accounts {
		if s.accounts[i].Code == code {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
}

func (s *Store) ListAccounts(_ context.Context, companyID string) ([]domain.Account, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	return append([]domain.Account(nil), s.accounts...), nil
}

func (s *Store) SaveAccount(context.Context, domain.Account) error    { return ErrReadOnly }
func (s *Store) SaveAccounts(context.Context, []domain.Account) error { return ErrReadOnly }
func (s *Store) UpdateAccount(context.Context, domain.Account) error  { return ErrReadOnly }
func (s *Store) DeactivateAccount(context.Context, string, string, string, time.Time) error {
	return ErrReadOnly
}

func (s *Store) FindJournalByID(_ context.Context, companyID, journalID string) (*domain.Journal, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	for i := range s.journals {
		if s.journals[i].JournalID == journalID {
			j := s.journals[i]
			return &j, nil
		}
	}
	return nil, fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
}

// ListJournals pages newest first with the same cursor tokens as the
// database repository.
func (s *Store) ListJournals(_ context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if err := s.owns(companyID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	var after *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid next token: %v", apperrors.ErrValidation, err)
		}
		after = &c
	}

	ordered := append([]domain.Journal(nil), s.journals...)
	sort.Slice(ordered, func(i, j int) bool { return journalAfter(ordered[i], ordered[j]) })

	page := make([]domain.Journal, 0, limit)
	for _, j := range ordered {
		if !includeReversals && j.SourceKind == domain.SourceReversal {
			continue
		}
		if after != nil && !cursorAfter(*after, j) {
			continue
		}
		if len(page) == limit {
			token := pagination.EncodeToken(cursorOf(page[len(page)-1]))
			return page, &token, nil
		}
		j.Transactions = nil
		page = append(page, j)
	}
	return page, nil, nil
}

// FindJournalsUpTo returns every journal dated on or before asOf with its lines.
func (s *Store) FindJournalsUpTo(_ context.Context, companyID string, asOf time.Time) ([]domain.Journal, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	out := make([]domain.Journal, 0, len(s.journals))
	for _, j := range s.journals {
		if !j.JournalDate.After(asOf) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *Store) SaveJournal(context.Context, domain.Journal, []domain.Transaction) error {
	return ErrReadOnly
}
func (s *Store) SaveReversal(context.Context, domain.Journal, domain.Journal, []domain.Transaction) error {
	return ErrReadOnly
}
func (s *Store) SaveSupersede(context.Context, domain.Journal, domain.Journal, []domain.Transaction, domain.Journal, []domain.Transaction) error {
	return ErrReadOnly
}
func (s *Store) UpdateJournal(context.Context, domain.Journal) error { return ErrReadOnly }

func (s *Store) FindTransactionsByJournalID(_ context.Context, journalID string) ([]domain.Transaction, error) {
	for _, j := range s.journals {
		if j.JournalID == journalID {
			return append([]domain.Transaction(nil), j.Transactions...), nil
		}
	}
	return []domain.Transaction{}, nil
}

func (s *Store) FindTransactionsByJournalIDs(_ context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	want := make(map[string]bool, len(journalIDs))
	for _, id := range journalIDs {
		want[id] = true
	}
	out := make(map[string][]domain.Transaction, len(journalIDs))
	for _, j := range s.journals {
		if want[j.JournalID] {
			out[j.JournalID] = append([]domain.Transaction(nil), j.Transactions...)
		}
	}
	return out, nil
}

func (s *Store) SavePeriod(context.Context, domain.Period) error { return ErrReadOnly }

func (s *Store) FindPeriodByID(_ context.Context, companyID, periodID string) (*domain.Period, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	for i := range s.periods {
		if s.periods[i].PeriodID == periodID {
			p := s.periods[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
}

func (s *Store) ListPeriods(_ context.Context, companyID string) ([]domain.Period, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	return append([]domain.Period(nil), s.periods...), nil
}

func (s *Store) UpdatePeriodStatus(context.Context, domain.Period) error { return ErrReadOnly }

// ListRates returns the latest rate per currency effective on or before asOf.
func (s *Store) ListRates(_ context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	latest := make(map[string]domain.CurrencyRate)
	for _, r := range s.rates {
		if r.EffectiveDate.After(asOf) {
			continue
		}
		if cur, ok := latest[r.Code]; !ok || r.EffectiveDate.After(cur.EffectiveDate) {
			latest[r.Code] = r
		}
	}
	out := make([]domain.CurrencyRate, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) SaveRate(context.Context, domain.CurrencyRate) error { return ErrReadOnly }

func (s *Store) SaveInitialBalance(context.Context, domain.InitialBalance) error { return ErrReadOnly }

func (s *Store) ListInitialBalances(_ context.Context, companyID string) ([]domain.InitialBalance, error) {
	if err := s.owns(companyID); err != nil {
		return nil, err
	}
	return append([]domain.InitialBalance(nil), s.initials...), nil
}

func journalAfter(a, b domain.Journal) bool {
	if !a.JournalDate.Equal(b.JournalDate) {
		return a.JournalDate.After(b.JournalDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.JournalID > b.JournalID
}

func cursorOf(j domain.Journal) pagination.Cursor {
	return pagination.Cursor{JournalDate: j.JournalDate, CreatedAt: j.CreatedAt, ID: j.JournalID}
}

// cursorAfter reports whether j sorts strictly after the cursor position.
func cursorAfter(c pagination.Cursor, j domain.Journal) bool {
	return journalAfter(domain.Journal{JournalDate: c.JournalDate, AuditFields: domain.AuditFields{CreatedAt: c.CreatedAt}, JournalID: c.ID}, j)
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %q is not a YYYY-MM-DD date", apperrors.ErrValidation, field, raw)
	}
	return t, nil
}

func parseOptionalDate(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	return parseDate(field, raw)
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %q is not a number", apperrors.ErrValidation, field, raw)
	}
	return d, nil
}
