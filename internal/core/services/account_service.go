package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, opts ...Option) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: accountRepo, companyRepo: companyRepo}
	svc.apply(opts)
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByCode(ctx, companyID, code); err == nil {
		return nil, fmt.Errorf("%w: account code %s is already in use", apperrors.ErrDuplicate, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code", slog.String("company_id", companyID), slog.String("code", code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.KindGeneral
	}
	now := s.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      companyID,
		Code:           code,
		Name:           req.Name,
		AccountType:    req.AccountType,
		Category:       req.Category,
		Classification: req.Classification,
		Kind:           kind,
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if !account.AccountType.IsBalanceSheet() && account.Classification == domain.ClassificationUnset {
		account.Classification = domain.ClassificationNotApplicable
	}
	if kind.IsCash() && account.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: only asset accounts can be bank or wallet accounts", apperrors.ErrValidation)
	}

	// Reject accounts the statement builders could never place.
	if _, _, err := reporting.Classify(account, company.Settings.AccountingMode); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("company_id", companyID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Category != nil {
		account.Category = *req.Category
		updated = true
	}
	if req.Classification != nil {
		account.Classification = *req.Classification
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID, userID string) error {
	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrConflict, accountID)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, companyID, accountID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context, companyID, userID string) (*dto.SeedAccountsResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	existing, err := s.ListAccounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(existing))
	for _, acc := range existing {
		used[acc.Code] = true
	}

	now := s.Now()
	chart := reporting.ChartFor(company.Settings.AccountingMode)
	created := make([]domain.Account, 0, len(chart))
	for _, entry := range chart {
		if used[entry.Code] {
			continue
		}
		created = append(created, domain.Account{
			AccountID:      uuid.NewString(),
			CompanyID:      companyID,
			Code:           entry.Code,
			Name:           entry.Name,
			AccountType:    entry.Type,
			Category:       entry.Category,
			Classification: entry.Classification,
			Kind:           entry.Kind,
			CurrencyCode:   company.Settings.ReportingCurrency,
			IsActive:       true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}

	if len(created) > 0 {
		if err := s.accountRepo.SaveAccounts(ctx, created); err != nil {
			s.LogError(ctx, err, "Failed to seed chart of accounts", slog.String("company_id", companyID))
			return nil, fmt.Errorf("failed to seed chart of accounts: %w", err)
		}
	}

	s.LogInfo(ctx, "Chart of accounts seeded", slog.String("company_id", companyID), slog.Int("created", len(created)))
	return &dto.SeedAccountsResponse{
		Created:  len(created),
		Skipped:  len(chart) - len(created),
		Accounts: dto.ToListAccountResponse(created),
	}, nil
}
