package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelInitialBalance converts a domain InitialBalance; a zero effective
// date is stored as NULL.
func ToModelInitialBalance(d domain.InitialBalance) models.InitialBalance {
	m := models.InitialBalance{
		InitialBalanceID: d.InitialBalanceID,
		CompanyID:        d.CompanyID,
		AccountID:        d.AccountID,
		CurrencyCode:     d.CurrencyCode,
		Amount:           d.Amount,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if !d.EffectiveDate.IsZero() {
		eff := domain.DateOf(d.EffectiveDate)
		m.EffectiveDate = nullTime(&eff)
	}
	return m
}

// ToDomainInitialBalance converts a model InitialBalance.
func ToDomainInitialBalance(m models.InitialBalance) domain.InitialBalance {
	d := domain.InitialBalance{
		InitialBalanceID: m.InitialBalanceID,
		CompanyID:        m.CompanyID,
		AccountID:        m.AccountID,
		CurrencyCode:     m.CurrencyCode,
		Amount:           m.Amount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.EffectiveDate.Valid {
		d.EffectiveDate = domain.DateOf(m.EffectiveDate.Time)
	}
	return d
}
