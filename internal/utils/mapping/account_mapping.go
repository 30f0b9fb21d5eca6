package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		CompanyID:      d.CompanyID,
		Code:           d.Code,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		Category:       d.Category,
		Classification: string(d.Classification),
		Kind:           string(d.Kind),
		CurrencyCode:   d.CurrencyCode,
		Description:    d.Description,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		CompanyID:      m.CompanyID,
		Code:           m.Code,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		Category:       m.Category,
		Classification: domain.AccountClassification(m.Classification),
		Kind:           domain.AccountKind(m.Kind),
		CurrencyCode:   m.CurrencyCode,
		Description:    m.Description,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
