package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		CompanyID:     d.CompanyID,
		CurrencyCode:  d.Code,
		Rate:          d.Rate,
		IsBase:        d.IsBase,
		EffectiveDate: domain.DateOf(d.EffectiveDate),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		CompanyID:     m.CompanyID,
		Code:          m.CurrencyCode,
		Rate:          m.Rate,
		IsBase:        m.IsBase,
		EffectiveDate: domain.DateOf(m.EffectiveDate),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
