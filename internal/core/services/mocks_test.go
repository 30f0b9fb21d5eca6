package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, userID, now)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, companyID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) FindJournalsUpTo(ctx context.Context, companyID string, asOf time.Time) ([]domain.Journal, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	args := m.Called(ctx, journal, transactions)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, original domain.Journal, reversal domain.Journal, transactions []domain.Transaction) error {
	args := m.Called(ctx, original, reversal, transactions)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveSupersede(ctx context.Context, original domain.Journal, reversal domain.Journal, reversalTxns []domain.Transaction, replacement domain.Journal, replacementTxns []domain.Transaction) error {
	args := m.Called(ctx, original, reversal, reversalTxns, replacement, replacementTxns)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	args := m.Called(ctx, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Transaction), args.Error(1)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriodStatus(ctx context.Context, period domain.Period) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepository) SaveRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock InitialBalanceRepository ---
type MockInitialBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.InitialBalanceRepositoryFacade = (*MockInitialBalanceRepository)(nil)

func (m *MockInitialBalanceRepository) SaveInitialBalance(ctx context.Context, balance domain.InitialBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockInitialBalanceRepository) ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InitialBalance), args.Error(1)
}
