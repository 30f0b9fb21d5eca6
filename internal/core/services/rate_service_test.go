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
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateRepository
	service  portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.service = services.NewRateService(suite.mockRepo, clock())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (suite *RateServiceTestSuite) TestUpsertRate_FirstRateMustBeBase() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx, testCompanyID, date("2024-12-31")).Return([]domain.CurrencyRate{}, nil).Once()

	_, err := suite.service.UpsertRate(ctx, testCompanyID, dto.UpsertRateRequest{Code: "EUR", Rate: dec("1.1")}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestUpsertRate_AddsToTable() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx, testCompanyID, date("2024-06-30")).Return(usdBase(), nil).Once()
	suite.mockRepo.On("SaveRate", ctx, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.Code == "EUR" && r.CompanyID == testCompanyID && r.EffectiveDate.Equal(date("2024-06-30"))
	})).Return(nil).Once()

	rate, err := suite.service.UpsertRate(ctx, testCompanyID, dto.UpsertRateRequest{
		Code: "eur", Rate: dec("1.1"), EffectiveDate: date("2024-06-30"),
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal("EUR", rate.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestUpsertRate_SecondBaseRejected() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx, testCompanyID, date("2024-12-31")).Return(usdBase(), nil).Once()

	_, err := suite.service.UpsertRate(ctx, testCompanyID, dto.UpsertRateRequest{
		Code: "EUR", Rate: decimal.NewFromInt(1), IsBase: true,
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestUpsertRate_BaseMustBeOne() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx, testCompanyID, date("2024-12-31")).Return(usdBase(), nil).Once()

	_, err := suite.service.UpsertRate(ctx, testCompanyID, dto.UpsertRateRequest{
		Code: "USD", Rate: dec("2"), IsBase: true,
	}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestListRates_DefaultsToToday() {
	ctx := context.Background()
	suite.mockRepo.On("ListRates", ctx, testCompanyID, date("2024-12-31")).Return(usdBase(), nil).Once()

	rates, err := suite.service.ListRates(ctx, testCompanyID, time.Time{})

	suite.Require().NoError(err)
	suite.Len(rates, 1)
}
