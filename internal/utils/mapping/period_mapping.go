package mapping

import (
	"github.com/vickinc/eazybizy/internal/core/domain"
	"github.com/vickinc/eazybizy/internal/models"
)

// ToModelPeriod converts a domain Period to its table row.
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:    d.PeriodID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		StartDate:   domain.DateOf(d.StartDate),
		EndDate:     domain.DateOf(d.EndDate),
		FiscalYear:  d.FiscalYear,
		PeriodType:  string(d.PeriodType),
		Status:      string(d.Status),
		ClosedAt:    nullTime(d.ClosedAt),
		ClosedBy:    nullString(d.ClosedBy),
		ReopenedAt:  nullTime(d.ReopenedAt),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts an accounting_periods row to a domain Period.
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		StartDate:   domain.DateOf(m.StartDate),
		EndDate:     domain.DateOf(m.EndDate),
		FiscalYear:  m.FiscalYear,
		PeriodType:  domain.PeriodType(m.PeriodType),
		Status:      domain.PeriodStatus(m.Status),
		ClosedAt:    timePtr(m.ClosedAt),
		ClosedBy:    stringPtr(m.ClosedBy),
		ReopenedAt:  timePtr(m.ReopenedAt),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
