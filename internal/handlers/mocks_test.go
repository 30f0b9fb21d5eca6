package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

// ret extracts a typed pointer result from a mock call.
func ret[T any](args mock.Arguments, i int) *T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*T)
}

type MockCompanyService struct{ mock.Mock }

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, req, userID)
	return ret[domain.Company](args, 0), args.Error(1)
}
func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	return ret[domain.Company](args, 0), args.Error(1)
}
func (m *MockCompanyService) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateCompanySettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.Company](args, 0), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

type MockAccountService struct{ mock.Mock }

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	return ret[domain.Account](args, 0), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.Account](args, 0), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, userID)
	return ret[domain.Account](args, 0), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error {
	return m.Called(ctx, companyID, accountID, userID).Error(0)
}
func (m *MockAccountService) SeedDefaultChart(ctx context.Context, companyID, userID string) (*dto.SeedAccountsResponse, error) {
	args := m.Called(ctx, companyID, userID)
	return ret[dto.SeedAccountsResponse](args, 0), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

type MockJournalService struct{ mock.Mock }

func (m *MockJournalService) GetJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID)
	return ret[domain.Journal](args, 0), args.Error(1)
}
func (m *MockJournalService) ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, companyID, params)
	return ret[dto.ListJournalsResponse](args, 0), args.Error(1)
}
func (m *MockJournalService) CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.Journal](args, 0), args.Error(1)
}
func (m *MockJournalService) UpdateJournal(ctx context.Context, companyID, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID, req, userID)
	return ret[domain.Journal](args, 0), args.Error(1)
}
func (m *MockJournalService) ReverseJournal(ctx context.Context, companyID, journalID, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID, userID)
	return ret[domain.Journal](args, 0), args.Error(1)
}
func (m *MockJournalService) SupersedeJournal(ctx context.Context, companyID, journalID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, *domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID, req, userID)
	return ret[domain.Journal](args, 0), ret[domain.Journal](args, 1), args.Error(2)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

type MockPeriodService struct{ mock.Mock }

func (m *MockPeriodService) CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, userID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.Period](args, 0), args.Error(1)
}
func (m *MockPeriodService) GetPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, periodID)
	return ret[domain.Period](args, 0), args.Error(1)
}
func (m *MockPeriodService) ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}
func (m *MockPeriodService) ClosePeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, periodID, userID)
	return ret[domain.Period](args, 0), args.Error(1)
}
func (m *MockPeriodService) ReopenPeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, periodID, userID)
	return ret[domain.Period](args, 0), args.Error(1)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

type MockRateService struct{ mock.Mock }

func (m *MockRateService) ListRates(ctx context.Context, companyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}
func (m *MockRateService) UpsertRate(ctx context.Context, companyID string, req dto.UpsertRateRequest, userID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.CurrencyRate](args, 0), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

type MockBalanceService struct{ mock.Mock }

func (m *MockBalanceService) SetInitialBalance(ctx context.Context, companyID string, req dto.SetInitialBalanceRequest, userID string) (*domain.InitialBalance, error) {
	args := m.Called(ctx, companyID, req, userID)
	return ret[domain.InitialBalance](args, 0), args.Error(1)
}
func (m *MockBalanceService) ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InitialBalance), args.Error(1)
}
func (m *MockBalanceService) Balances(ctx context.Context, companyID string, asOf time.Time, reportingCurrency string) (*dto.BalancesResponse, error) {
	args := m.Called(ctx, companyID, asOf, reportingCurrency)
	return ret[dto.BalancesResponse](args, 0), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

type MockReportingService struct{ mock.Mock }

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.ProfitLossData], error) {
	args := m.Called(ctx, companyID, req)
	return ret[domain.StatementResult[domain.ProfitLossData]](args, 0), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.BalanceSheetData], error) {
	args := m.Called(ctx, companyID, req)
	return ret[domain.StatementResult[domain.BalanceSheetData]](args, 0), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.CashFlowData], error) {
	args := m.Called(ctx, companyID, req)
	return ret[domain.StatementResult[domain.CashFlowData]](args, 0), args.Error(1)
}
func (m *MockReportingService) EquityChanges(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.EquityChangesData], error) {
	args := m.Called(ctx, companyID, req)
	return ret[domain.StatementResult[domain.EquityChangesData]](args, 0), args.Error(1)
}
func (m *MockReportingService) Bundle(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementBundle, error) {
	args := m.Called(ctx, companyID, req)
	return ret[domain.StatementBundle](args, 0), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

type MockInvoiceService struct{ mock.Mock }

func (m *MockInvoiceService) CalculateTotals(ctx context.Context, req dto.InvoiceTotalsRequest) (*dto.InvoiceTotalsResponse, error) {
	args := m.Called(ctx, req)
	return ret[dto.InvoiceTotalsResponse](args, 0), args.Error(1)
}

var _ portssvc.InvoiceSvc = (*MockInvoiceService)(nil)
