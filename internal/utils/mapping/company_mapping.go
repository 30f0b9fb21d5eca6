package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelCompany flattens a domain Company into its table row.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:            d.CompanyID,
		Name:                 d.Info.Name,
		LegalName:            d.Info.LegalName,
		RegistrationNumber:   d.Info.RegistrationNumber,
		Country:              d.Info.Country,
		ReportingCurrency:    d.Settings.ReportingCurrency,
		FiscalYearStartMonth: d.Settings.FiscalYearStartMonth,
		FiscalYearStartDay:   d.Settings.FiscalYearStartDay,
		AccountingMode:       string(d.Settings.AccountingMode),
		TaxBelowTheLine:      d.Settings.IFRS.TaxBelowTheLine,
		ShowComparatives:     d.Settings.IFRS.ShowComparatives,
		StaleTransactionDays: d.Settings.IFRS.StaleTransactionDays,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a companies row to a domain Company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID: m.CompanyID,
		Info: domain.CompanyInfo{
			Name:               m.Name,
			LegalName:          m.LegalName,
			RegistrationNumber: m.RegistrationNumber,
			Country:            m.Country,
		},
		Settings: domain.CompanySettings{
			ReportingCurrency:    m.ReportingCurrency,
			FiscalYearStartMonth: m.FiscalYearStartMonth,
			FiscalYearStartDay:   m.FiscalYearStartDay,
			AccountingMode:       domain.AccountingMode(m.AccountingMode),
			IFRS: domain.IFRSSettings{
				TaxBelowTheLine:      m.TaxBelowTheLine,
				ShowComparatives:     m.ShowComparatives,
				StaleTransactionDays: m.StaleTransactionDays,
			},
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
