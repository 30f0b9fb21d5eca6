package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/core/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAccountRepository
	mockCompany *MockCompanyRepository
	service     portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockCompany = new(MockCompanyRepository)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockCompany, clock())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "1010",
		Name:         "Operating Bank",
		AccountType:  domain.Asset,
		Category:     "Bank",
		Kind:         domain.KindBank,
		CurrencyCode: "usd",
	}

	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, testCompanyID, "1010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, testCompanyID, req, testUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("USD", account.CurrencyCode)
	suite.Equal(domain.KindBank, account.Kind)
	suite.True(account.IsActive)
	suite.Equal(fixedNow, account.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_IncomeStatementAccountIsNotApplicable() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "4000", Name: "Sales", AccountType: domain.Revenue, Category: "Sales", CurrencyCode: "USD"}

	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, testCompanyID, "4000").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, testCompanyID, req, testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClassificationNotApplicable, account.Classification)
	suite.Equal(domain.KindGeneral, account.Kind)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := testAccount("a1", "1010", domain.Asset, "Bank", domain.KindBank)

	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, testCompanyID, "1010").Return(&existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, testCompanyID, dto.CreateAccountRequest{
		Code: "1010", Name: "Bank", AccountType: domain.Asset, CurrencyCode: "USD",
	}, testUserID)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BalanceSheetAccountInSimplifiedMode() {
	ctx := context.Background()
	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeSimplified), nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, testCompanyID, "2000").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, testCompanyID, dto.CreateAccountRequest{
		Code: "2000", Name: "Payables", AccountType: domain.Liability, CurrencyCode: "USD",
	}, testUserID)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CashKindOnLiability() {
	ctx := context.Background()
	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, testCompanyID, "2100").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, testCompanyID, dto.CreateAccountRequest{
		Code: "2100", Name: "Card", AccountType: domain.Liability, Kind: domain.KindWallet, CurrencyCode: "USD",
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount() {
	ctx := context.Background()
	existing := testAccount("a1", "1100", domain.Asset, "Receivables", domain.KindGeneral)
	name := "Trade Receivables"

	suite.mockRepo.On("FindAccountByID", ctx, testCompanyID, "a1").Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == name && a.LastUpdatedBy == testUserID
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, testCompanyID, "a1", dto.UpdateAccountRequest{Name: &name}, testUserID)

	suite.Require().NoError(err)
	suite.Equal(name, account.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	existing := testAccount("a1", "1100", domain.Asset, "Receivables", domain.KindGeneral)

	suite.mockRepo.On("FindAccountByID", ctx, testCompanyID, "a1").Return(&existing, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, testCompanyID, "a1", testUserID, fixedNow).Return(nil).Once()

	suite.NoError(suite.service.DeactivateAccount(ctx, testCompanyID, "a1", testUserID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	existing := testAccount("a1", "1100", domain.Asset, "Receivables", domain.KindGeneral)
	existing.IsActive = false

	suite.mockRepo.On("FindAccountByID", ctx, testCompanyID, "a1").Return(&existing, nil).Once()

	suite.ErrorIs(suite.service.DeactivateAccount(ctx, testCompanyID, "a1", testUserID), apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_SkipsExistingCodes() {
	ctx := context.Background()
	existing := []domain.Account{testAccount("a1", "1000", domain.Asset, "Cash", domain.KindGeneral)}

	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeFull), nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, testCompanyID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveAccounts", ctx, mock.MatchedBy(func(accs []domain.Account) bool {
		for _, a := range accs {
			if a.Code == "1000" || a.CurrencyCode != "USD" || a.CompanyID != testCompanyID {
				return false
			}
		}
		return len(accs) == len(reporting.DefaultChart)-1
	})).Return(nil).Once()

	resp, err := suite.service.SeedDefaultChart(ctx, testCompanyID, testUserID)

	suite.Require().NoError(err)
	suite.Equal(len(reporting.DefaultChart)-1, resp.Created)
	suite.Equal(1, resp.Skipped)
	suite.Len(resp.Accounts, resp.Created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_NothingToCreate() {
	ctx := context.Background()
	var existing []domain.Account
	for i, e := range reporting.SimplifiedChart {
		existing = append(existing, testAccount(string(rune('a'+i)), e.Code, e.Type, e.Category, e.Kind))
	}

	suite.mockCompany.On("FindCompanyByID", ctx, testCompanyID).Return(testCompany(domain.ModeSimplified), nil).Once()
	suite.mockRepo.On("ListAccounts", ctx, testCompanyID).Return(existing, nil).Once()

	resp, err := suite.service.SeedDefaultChart(ctx, testCompanyID, testUserID)

	suite.Require().NoError(err)
	suite.Equal(0, resp.Created)
	suite.Equal(len(reporting.SimplifiedChart), resp.Skipped)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_Error() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx, testCompanyID).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccounts(ctx, testCompanyID)

	suite.Nil(accounts)
	suite.ErrorIs(err, assert.AnError)
}
