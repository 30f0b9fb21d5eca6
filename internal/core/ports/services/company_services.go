package services

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/dto"
)

// CompanySvcFacade manages tenants and their reporting settings.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error)
	UpdateCompanySettings(ctx context.Context, companyID string, req dto.UpdateCompanySettingsRequest, userID string) (*domain.Company, error)
}
