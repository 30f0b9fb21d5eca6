package repositories

import (
	"context"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence for tenants and their settings.
type CompanyRepositoryFacade interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
}
