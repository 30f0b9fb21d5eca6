package dto

import (
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a new company.
type CreateCompanyRequest struct {
	Name                 string                `json:"name" binding:"required"`
	LegalName            string                `json:"legalName"`
	RegistrationNumber   string                `json:"registrationNumber"`
	Country              string                `json:"country"`
	ReportingCurrency    string                `json:"reportingCurrency" binding:"omitempty,currency"`
	FiscalYearStartMonth int                   `json:"fiscalYearStartMonth" binding:"omitempty,min=1,max=12"`
	FiscalYearStartDay   int                   `json:"fiscalYearStartDay" binding:"omitempty,min=1,max=31"`
	AccountingMode       domain.AccountingMode `json:"accountingMode" binding:"omitempty,oneof=FULL SIMPLIFIED"`
}

// UpdateCompanySettingsRequest changes reporting settings. Nil fields are left unchanged.
type UpdateCompanySettingsRequest struct {
	ReportingCurrency    *string                `json:"reportingCurrency" binding:"omitempty,currency"`
	FiscalYearStartMonth *int                   `json:"fiscalYearStartMonth" binding:"omitempty,min=1,max=12"`
	FiscalYearStartDay   *int                   `json:"fiscalYearStartDay" binding:"omitempty,min=1,max=31"`
	AccountingMode       *domain.AccountingMode `json:"accountingMode" binding:"omitempty,oneof=FULL SIMPLIFIED"`
	TaxBelowTheLine      *bool                  `json:"taxBelowTheLine"`
	ShowComparatives     *bool                  `json:"showComparatives"`
	StaleTransactionDays *int                   `json:"staleTransactionDays" binding:"omitempty,min=0"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID     string                 `json:"companyID"`
	Info          domain.CompanyInfo     `json:"info"`
	Settings      domain.CompanySettings `json:"settings"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ListCompaniesParams defines query parameters for listing companies.
type ListCompaniesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Info:          c.Info,
		Settings:      c.Settings,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to CompanyResponse DTOs
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return res
}
