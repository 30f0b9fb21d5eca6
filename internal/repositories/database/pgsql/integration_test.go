package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	"github.com/vickinc/eazybizy/internal/repositories/database/pgsql"
	"github.com/vickinc/eazybizy/internal/testutil"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	repos portsrepo.RepositoryProvider
	ctx   context.Context
	audit domain.AuditFields
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	pool := testutil.SetupTestDB(s.T())
	s.repos = pgsql.NewRepositoryProvider(pool, pgsql.CacheOptions{Size: 64, RateTTL: time.Minute, AccountTTL: time.Minute})
	s.ctx = context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.audit = domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"}
}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

// seedCompany creates a company with a bank and a sales account.
func (s *RepositoryIntegrationSuite) seedCompany(id string) {
	s.Require().NoError(s.repos.CompanyRepo.SaveCompany(s.ctx, domain.Company{
		CompanyID:   id,
		Info:        domain.CompanyInfo{Name: "Company " + id},
		Settings:    domain.DefaultCompanySettings("USD"),
		AuditFields: s.audit,
	}))
	s.Require().NoError(s.repos.AccountRepo.SaveAccounts(s.ctx, []domain.Account{
		{AccountID: id + "-bank", CompanyID: id, Code: "1010", Name: "Bank", AccountType: domain.Asset, Category: "Bank",
			Classification: domain.ClassificationCurrent, Kind: domain.KindBank, CurrencyCode: "USD", IsActive: true, AuditFields: s.audit},
		{AccountID: id + "-sales", CompanyID: id, Code: "4000", Name: "Sales", AccountType: domain.Revenue, Category: "Sales",
			Classification: domain.ClassificationNotApplicable, Kind: domain.KindGeneral, CurrencyCode: "USD", IsActive: true, AuditFields: s.audit},
	}))
}

func (s *RepositoryIntegrationSuite) journal(company, id, on, amount string) (domain.Journal, []domain.Transaction) {
	j := domain.Journal{
		JournalID: id, CompanyID: company, JournalDate: day(on), Description: id, CurrencyCode: "USD",
		SourceKind: domain.SourceManual, Status: domain.Posted, Amount: decimal.RequireFromString(amount), AuditFields: s.audit,
	}
	txns := []domain.Transaction{
		{TransactionID: id + "-1", JournalID: id, AccountID: company + "-bank", Amount: j.Amount, TransactionType: domain.Debit, CurrencyCode: "USD"},
		{TransactionID: id + "-2", JournalID: id, AccountID: company + "-sales", Amount: j.Amount, TransactionType: domain.Credit, CurrencyCode: "USD"},
	}
	return j, txns
}

func (s *RepositoryIntegrationSuite) TestCompanyAndAccounts() {
	s.seedCompany("c-accounts")

	c, err := s.repos.CompanyRepo.FindCompanyByID(s.ctx, "c-accounts")
	s.Require().NoError(err)
	s.Equal(domain.ModeFull, c.Settings.AccountingMode)

	_, err = s.repos.CompanyRepo.FindCompanyByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)

	dup := domain.Account{AccountID: "other", CompanyID: "c-accounts", Code: "1010", Name: "Dup", AccountType: domain.Asset,
		Kind: domain.KindGeneral, CurrencyCode: "USD", IsActive: true, AuditFields: s.audit}
	s.ErrorIs(s.repos.AccountRepo.SaveAccount(s.ctx, dup), apperrors.ErrDuplicate)

	s.Require().NoError(s.repos.AccountRepo.DeactivateAccount(s.ctx, "c-accounts", "c-accounts-sales", "user-1", s.audit.CreatedAt))
	accounts, err := s.repos.AccountRepo.ListAccounts(s.ctx, "c-accounts")
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("1010", accounts[0].Code)
	s.False(accounts[1].IsActive)
}

func (s *RepositoryIntegrationSuite) TestJournalsPaginationAndReversal() {
	s.seedCompany("c-journals")
	for _, j := range []struct{ id, on string }{{"j1", "2024-01-05"}, {"j2", "2024-02-05"}, {"j3", "2024-03-05"}} {
		journal, txns := s.journal("c-journals", "c-journals-"+j.id, j.on, "100")
		s.Require().NoError(s.repos.JournalRepo.SaveJournal(s.ctx, journal, txns))
	}

	page, next, err := s.repos.JournalRepo.ListJournals(s.ctx, "c-journals", 2, nil, false)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Require().NotNil(next)
	s.Equal("c-journals-j3", page[0].JournalID)

	page, next, err = s.repos.JournalRepo.ListJournals(s.ctx, "c-journals", 2, next, false)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Nil(next)
	s.Equal("c-journals-j1", page[0].JournalID)

	original, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "c-journals", "c-journals-j1")
	s.Require().NoError(err)
	reversal, txns := s.journal("c-journals", "c-journals-r1", "2024-01-05", "100")
	reversal.SourceKind = domain.SourceReversal
	origID := original.JournalID
	reversal.OriginalJournalID = &origID
	txns[0].TransactionType, txns[1].TransactionType = domain.Credit, domain.Debit
	original.Status = domain.Reversed
	s.Require().NoError(s.repos.JournalRepo.SaveReversal(s.ctx, *original, reversal, txns))

	again, againTxns := s.journal("c-journals", "c-journals-r2", "2024-01-05", "100")
	again.OriginalJournalID = &origID
	s.ErrorIs(s.repos.JournalRepo.SaveReversal(s.ctx, *original, again, againTxns), apperrors.ErrConflict)

	all, err := s.repos.JournalRepo.FindJournalsUpTo(s.ctx, "c-journals", day("2024-02-29"))
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	for _, j := range all {
		s.Len(j.Transactions, 2, j.JournalID)
	}
	reloaded, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "c-journals", "c-journals-j1")
	s.Require().NoError(err)
	s.Equal(domain.Reversed, reloaded.Status)
	s.Require().NotNil(reloaded.ReversingJournalID)
	s.Equal("c-journals-r1", *reloaded.ReversingJournalID)
}

func (s *RepositoryIntegrationSuite) TestSupersedeIsAllOrNothing() {
	s.seedCompany("c-sup")
	journal, txns := s.journal("c-sup", "c-sup-j1", "2024-01-05", "100")
	s.Require().NoError(s.repos.JournalRepo.SaveJournal(s.ctx, journal, txns))

	original, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "c-sup", "c-sup-j1")
	s.Require().NoError(err)
	origID := original.JournalID
	original.Status = domain.Reversed

	reversal, reversalTxns := s.journal("c-sup", "c-sup-r1", "2024-01-05", "100")
	reversal.SourceKind = domain.SourceReversal
	reversal.OriginalJournalID = &origID
	reversalTxns[0].TransactionType, reversalTxns[1].TransactionType = domain.Credit, domain.Debit

	// The replacement reuses the original's ID, so its insert fails after
	// the reversal has been written inside the transaction.
	clash, clashTxns := s.journal("c-sup", "c-sup-j1", "2024-01-05", "120")
	clashTxns[0].TransactionID, clashTxns[1].TransactionID = "c-sup-x-1", "c-sup-x-2"
	s.Error(s.repos.JournalRepo.SaveSupersede(s.ctx, *original, reversal, reversalTxns, clash, clashTxns))

	reloaded, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "c-sup", "c-sup-j1")
	s.Require().NoError(err)
	s.Equal(domain.Posted, reloaded.Status)
	s.Nil(reloaded.ReversingJournalID)
	_, err = s.repos.JournalRepo.FindJournalByID(s.ctx, "c-sup", "c-sup-r1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	replacement, replacementTxns := s.journal("c-sup", "c-sup-j2", "2024-01-05", "120")
	s.Require().NoError(s.repos.JournalRepo.SaveSupersede(s.ctx, *original, reversal, reversalTxns, replacement, replacementTxns))

	all, err := s.repos.JournalRepo.FindJournalsUpTo(s.ctx, "c-sup", day("2024-01-31"))
	s.Require().NoError(err)
	s.Len(all, 3)
	reloaded, err = s.repos.JournalRepo.FindJournalByID(s.ctx, "c-sup", "c-sup-j1")
	s.Require().NoError(err)
	s.Equal(domain.Reversed, reloaded.Status)
}

func (s *RepositoryIntegrationSuite) TestRatesLatestPerCurrency() {
	s.seedCompany("c-rates")
	one := decimal.NewFromInt(1)
	for _, r := range []domain.CurrencyRate{
		{CompanyID: "c-rates", Code: "USD", Rate: one, IsBase: true, EffectiveDate: day("2024-01-01"), AuditFields: s.audit},
		{CompanyID: "c-rates", Code: "EUR", Rate: decimal.RequireFromString("1.05"), EffectiveDate: day("2024-01-01"), AuditFields: s.audit},
		{CompanyID: "c-rates", Code: "EUR", Rate: decimal.RequireFromString("1.10"), EffectiveDate: day("2024-03-01"), AuditFields: s.audit},
	} {
		s.Require().NoError(s.repos.RateRepo.SaveRate(s.ctx, r))
	}

	rates, err := s.repos.RateRepo.ListRates(s.ctx, "c-rates", day("2024-02-15"))
	s.Require().NoError(err)
	s.Require().Len(rates, 2)
	s.Equal("EUR", rates[0].Code)
	s.True(rates[0].Rate.Equal(decimal.RequireFromString("1.05")))

	rates, err = s.repos.RateRepo.ListRates(s.ctx, "c-rates", day("2024-03-01"))
	s.Require().NoError(err)
	s.True(rates[0].Rate.Equal(decimal.RequireFromString("1.10")))
}

func (s *RepositoryIntegrationSuite) TestPeriodsAndInitialBalances() {
	s.seedCompany("c-periods")
	p := domain.Period{PeriodID: "c-periods-q1", CompanyID: "c-periods", Name: "Q1", StartDate: day("2024-01-01"), EndDate: day("2024-03-31"),
		FiscalYear: 2024, PeriodType: domain.PeriodQuarterly, Status: domain.PeriodOpen, AuditFields: s.audit}
	s.Require().NoError(s.repos.PeriodRepo.SavePeriod(s.ctx, p))

	closedAt := s.audit.CreatedAt
	by := "user-1"
	p.Status, p.ClosedAt, p.ClosedBy = domain.PeriodClosed, &closedAt, &by
	s.Require().NoError(s.repos.PeriodRepo.UpdatePeriodStatus(s.ctx, p))
	got, err := s.repos.PeriodRepo.FindPeriodByID(s.ctx, "c-periods", "c-periods-q1")
	s.Require().NoError(err)
	s.Equal(domain.PeriodClosed, got.Status)
	s.Require().NotNil(got.ClosedBy)
	s.Nil(got.ReopenedAt)

	ib := domain.InitialBalance{InitialBalanceID: "ib1", CompanyID: "c-periods", AccountID: "c-periods-bank", CurrencyCode: "USD",
		Amount: decimal.NewFromInt(500), AuditFields: s.audit}
	s.Require().NoError(s.repos.InitialBalanceRepo.SaveInitialBalance(s.ctx, ib))
	ib.InitialBalanceID, ib.Amount = "ib2", decimal.NewFromInt(750)
	s.Require().NoError(s.repos.InitialBalanceRepo.SaveInitialBalance(s.ctx, ib))

	balances, err := s.repos.InitialBalanceRepo.ListInitialBalances(s.ctx, "c-periods")
	s.Require().NoError(err)
	s.Require().Len(balances, 1)
	s.True(balances[0].Amount.Equal(decimal.NewFromInt(750)))
	s.True(balances[0].EffectiveDate.IsZero())
}
