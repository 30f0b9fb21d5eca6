package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	companies *MockCompanyRepository
	accounts  *MockAccountRepository
	journals  *MockJournalRepository
	periods   *MockPeriodRepository
	rates     *MockRateRepository
	initials  *MockInitialBalanceRepository
	service   portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.companies = new(MockCompanyRepository)
	suite.accounts = new(MockAccountRepository)
	suite.journals = new(MockJournalRepository)
	suite.periods = new(MockPeriodRepository)
	suite.rates = new(MockRateRepository)
	suite.initials = new(MockInitialBalanceRepository)
	suite.service = services.NewBalanceService(portsrepo.RepositoryProvider{
		CompanyRepo:        suite.companies,
		AccountRepo:        suite.accounts,
		JournalRepo:        suite.journals,
		PeriodRepo:         suite.periods,
		RateRepo:           suite.rates,
		InitialBalanceRepo: suite.initials,
	}, clock())
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (suite *BalanceServiceTestSuite) TestSetInitialBalance_Success() {
	ctx := context.Background()
	bank := testLedgerAccounts()[0]
	on := time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC)
	suite.accounts.On("FindAccountByID", ctx, testCompanyID, "bank").Return(&bank, nil).Once()
	suite.initials.On("SaveInitialBalance", ctx, mock.MatchedBy(func(b domain.InitialBalance) bool {
		return b.AccountID == "bank" && b.CurrencyCode == "EUR" && b.Amount.Equal(dec("250")) &&
			b.EffectiveDate.Equal(date("2024-01-01")) && b.CreatedBy == testUserID && b.InitialBalanceID != ""
	})).Return(nil).Once()

	ib, err := suite.service.SetInitialBalance(ctx, testCompanyID, dto.SetInitialBalanceRequest{
		AccountID: "bank", CurrencyCode: "eur", Amount: dec("250"), EffectiveDate: &on,
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal("EUR", ib.CurrencyCode)
	suite.initials.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestSetInitialBalance_IncomeStatementAccount() {
	ctx := context.Background()
	sales := testLedgerAccounts()[2]
	suite.accounts.On("FindAccountByID", ctx, testCompanyID, "sales").Return(&sales, nil).Once()

	_, err := suite.service.SetInitialBalance(ctx, testCompanyID, dto.SetInitialBalanceRequest{
		AccountID: "sales", CurrencyCode: "USD", Amount: dec("10"),
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.initials.AssertNotCalled(suite.T(), "SaveInitialBalance", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestSetInitialBalance_UnknownAccount() {
	ctx := context.Background()
	suite.accounts.On("FindAccountByID", ctx, testCompanyID, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetInitialBalance(ctx, testCompanyID, dto.SetInitialBalanceRequest{
		AccountID: "ghost", CurrencyCode: "USD", Amount: dec("10"),
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *BalanceServiceTestSuite) TestBalances_SegmentsAndCashTotal() {
	asOf := date("2024-06-30")
	eurJournal := postedJournal("j3", "2024-04-01", line("bank", "100", domain.Debit), line("capital", "100", domain.Credit))
	eurJournal.CurrencyCode = "EUR"
	for i := range eurJournal.Transactions {
		eurJournal.Transactions[i].CurrencyCode = "EUR"
	}
	journals := append(tradingJournals(), eurJournal)
	rates := []domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), IsBase: true},
		{Code: "EUR", Rate: dec("1.1")},
	}

	suite.companies.On("FindCompanyByID", mock.Anything, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.accounts.On("ListAccounts", mock.Anything, testCompanyID).Return(testLedgerAccounts(), nil).Once()
	suite.periods.On("ListPeriods", mock.Anything, testCompanyID).Return([]domain.Period{}, nil).Once()
	suite.journals.On("FindJournalsUpTo", mock.Anything, testCompanyID, asOf).Return(journals, nil).Once()
	suite.initials.On("ListInitialBalances", mock.Anything, testCompanyID).Return(openingCapital(), nil).Once()
	suite.rates.On("ListRates", mock.Anything, testCompanyID, asOf).Return(rates, nil).Once()

	resp, err := suite.service.Balances(context.Background(), testCompanyID, asOf, "")

	suite.Require().NoError(err)
	suite.Equal("USD", resp.Currency)
	suite.Require().Len(resp.Accounts, 4)

	bank := resp.Accounts[0]
	suite.Equal("bank", bank.AccountID)
	suite.True(bank.IsCash)
	suite.Require().Len(bank.Segments, 2)
	suite.Equal("EUR", bank.Segments[0].CurrencyCode)
	suite.True(bank.Segments[0].FinalBalance.Equal(dec("100")))
	suite.Equal("USD", bank.Segments[1].CurrencyCode)
	suite.True(bank.Segments[1].FinalBalance.Equal(dec("1300")))
	suite.True(bank.Converted.Equal(dec("1410")), bank.Converted.String())
	suite.True(resp.CashTotal.Equal(dec("1410")), resp.CashTotal.String())
}

func (suite *BalanceServiceTestSuite) TestBalances_CompanyMissing() {
	suite.companies.On("FindCompanyByID", mock.Anything, testCompanyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Balances(context.Background(), testCompanyID, time.Time{}, "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
