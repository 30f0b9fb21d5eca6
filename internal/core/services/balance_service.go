package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/dto"
)

type balanceService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	accountRepo portsrepo.AccountReader
	initialRepo portsrepo.InitialBalanceRepositoryFacade
	loader      snapshotLoader
}

// NewBalanceService creates the opening balance and balance aggregation service.
func NewBalanceService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.BalanceSvcFacade {
	svc := &balanceService{
		companyRepo: repos.CompanyRepo,
		accountRepo: repos.AccountRepo,
		initialRepo: repos.InitialBalanceRepo,
		loader:      newSnapshotLoader(repos),
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// SetInitialBalance records the opening balance of a balance sheet account.
func (s *balanceService) SetInitialBalance(ctx context.Context, companyID string, req dto.SetInitialBalanceRequest, userID string) (*domain.InitialBalance, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, req.AccountID)
		}
		return nil, err
	}
	if !account.AccountType.IsBalanceSheet() {
		return nil, fmt.Errorf("%w: opening balances apply to balance sheet accounts only, %s is %s",
			apperrors.ErrValidation, account.Code, account.AccountType)
	}

	now := s.Now()
	balance := domain.InitialBalance{
		InitialBalanceID: uuid.NewString(),
		CompanyID:        companyID,
		AccountID:        account.AccountID,
		CurrencyCode:     reporting.NormalizeCurrency(req.CurrencyCode),
		Amount:           req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.EffectiveDate != nil {
		balance.EffectiveDate = domain.DateOf(*req.EffectiveDate)
	}

	if err := s.initialRepo.SaveInitialBalance(ctx, balance); err != nil {
		s.LogError(ctx, err, "Failed to save initial balance", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save initial balance: %w", err)
	}
	s.LogInfo(ctx, "Initial balance saved", slog.String("account_id", account.AccountID), slog.String("currency", balance.CurrencyCode))
	return &balance, nil
}

func (s *balanceService) ListInitialBalances(ctx context.Context, companyID string) ([]domain.InitialBalance, error) {
	balances, err := s.initialRepo.ListInitialBalances(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list initial balances", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list initial balances: %w", err)
	}
	return balances, nil
}

// Balances aggregates every active account at asOf. Segments stay in their
// own currency; only the converted figure and the cash total use the rate table.
func (s *balanceService) Balances(ctx context.Context, companyID string, asOf time.Time, reportingCurrency string) (*dto.BalancesResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if asOf.IsZero() {
		asOf = s.Now()
	}
	asOf = domain.DateOf(asOf)
	currency := reporting.NormalizeCurrency(reportingCurrency)
	if currency == "" {
		currency = company.Settings.ReportingCurrency
	}

	snap, err := s.loader.load(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for balances", slog.String("company_id", companyID))
		return nil, err
	}
	norm, err := reporting.Normalize(snap.journals, snap.accounts, nil, reporting.NormalizeOptions{SkipInvalid: true})
	if err != nil {
		return nil, err
	}
	rates, err := reporting.NewRateTable(rateTableOrBase(snap.rates, currency))
	if err != nil {
		return nil, err
	}

	resp := &dto.BalancesResponse{AsOf: asOf, Currency: currency, CashTotal: decimal.Zero}
	for _, acc := range snap.accounts {
		if !acc.IsActive {
			continue
		}
		segments := reporting.SegmentedBalancesAsOf(acc.AccountID, asOf, snap.initials, norm.Entries)
		converted, err := reporting.ConvertedBalance(segments, rates, currency)
		if err != nil {
			return nil, err
		}
		isCash := reporting.IsCashAccount(acc)
		if isCash {
			resp.CashTotal = resp.CashTotal.Add(converted)
		}
		resp.Accounts = append(resp.Accounts, dto.AccountBalanceResponse{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			IsCash:    isCash,
			Segments:  segments,
			Converted: converted,
		})
	}

	s.LogDebug(ctx, "Balances aggregated", slog.String("company_id", companyID), slog.Int("accounts", len(resp.Accounts)))
	return resp, nil
}
