package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo     portsrepo.CompanyRepositoryFacade
	defaultCurrency string
}

// NewCompanyService creates a new company service. defaultCurrency is used
// when a new company does not name a reporting currency.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade, defaultCurrency string, opts ...Option) portssvc.CompanySvcFacade {
	svc := &companyService{companyRepo: repo, defaultCurrency: defaultCurrency}
	svc.apply(opts)
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.ReportingCurrency))
	if currency == "" {
		currency = s.defaultCurrency
	}
	settings := domain.DefaultCompanySettings(currency)
	if req.FiscalYearStartMonth != 0 {
		settings.FiscalYearStartMonth = req.FiscalYearStartMonth
	}
	if req.FiscalYearStartDay != 0 {
		settings.FiscalYearStartDay = req.FiscalYearStartDay
	}
	if req.AccountingMode != "" {
		settings.AccountingMode = req.AccountingMode
	}
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	now := s.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Info: domain.CompanyInfo{
			Name:               req.Name,
			LegalName:          req.LegalName,
			RegistrationNumber: req.RegistrationNumber,
			Country:            req.Country,
		},
		Settings: settings,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	companies, err := s.companyRepo.ListCompanies(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) UpdateCompanySettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error) {
	company, err := s.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if req.ReportingCurrency != nil {
		settings.ReportingCurrency = strings.ToUpper(*req.ReportingCurrency)
	}
	if req.FiscalYearStartMonth != nil {
		settings.FiscalYearStartMonth = *req.FiscalYearStartMonth
	}
	if req.FiscalYearStartDay != nil {
		settings.FiscalYearStartDay = *req.FiscalYearStartDay
	}
	if req.AccountingMode != nil {
		settings.AccountingMode = *req.AccountingMode
	}
	if req.TaxBelowTheLine != nil {
		settings.IFRS.TaxBelowTheLine = *req.TaxBelowTheLine
	}
	if req.ShowComparatives != nil {
		settings.IFRS.ShowComparatives = *req.ShowComparatives
	}
	if req.StaleTransactionDays != nil {
		settings.IFRS.StaleTransactionDays = *req.StaleTransactionDays
	}
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	company.Settings = settings
	company.LastUpdatedAt = s.Now()
	company.LastUpdatedBy = userID
	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company settings", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to update company settings: %w", err)
	}

	s.LogInfo(ctx, "Company settings updated", slog.String("company_id", companyID))
	return company, nil
}

// validateSettings checks the fiscal year anchor against a leap year so that
// 29 February is accepted.
func validateSettings(st domain.CompanySettings) error {
	if !domain.ValidCurrencyCode(st.ReportingCurrency) {
		return fmt.Errorf("%w: reporting currency %q must be 3 to 10 letters or digits", apperrors.ErrValidation, st.ReportingCurrency)
	}
	if st.FiscalYearStartMonth < 1 || st.FiscalYearStartMonth > 12 {
		return fmt.Errorf("%w: fiscal year start month must be between 1 and 12", apperrors.ErrValidation)
	}
	lastDay := time.Date(2024, time.Month(st.FiscalYearStartMonth)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if st.FiscalYearStartDay < 1 || st.FiscalYearStartDay > lastDay {
		return fmt.Errorf("%w: fiscal year start day %d is not valid for month %d", apperrors.ErrValidation, st.FiscalYearStartDay, st.FiscalYearStartMonth)
	}
	switch st.AccountingMode {
	case domain.ModeFull, domain.ModeSimplified:
	default:
		return fmt.Errorf("%w: unknown accounting mode %q", apperrors.ErrValidation, st.AccountingMode)
	}
	if st.IFRS.StaleTransactionDays < 0 {
		return fmt.Errorf("%w: stale transaction days must not be negative", apperrors.ErrValidation)
	}
	return nil
}
