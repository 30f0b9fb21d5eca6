package dto

import (
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to open an accounting period.
type CreatePeriodRequest struct {
	Name       string            `json:"name" binding:"required"`
	StartDate  time.Time         `json:"startDate" binding:"required"`
	EndDate    time.Time         `json:"endDate" binding:"required"`
	FiscalYear int               `json:"fiscalYear" binding:"required,min=1900,max=9999"`
	PeriodType domain.PeriodType `json:"periodType" binding:"required,oneof=ANNUAL INTERIM QUARTERLY MONTHLY CUSTOM"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID   string              `json:"periodID"`
	Name       string              `json:"name"`
	StartDate  time.Time           `json:"startDate"`
	EndDate    time.Time           `json:"endDate"`
	FiscalYear int                 `json:"fiscalYear"`
	PeriodType domain.PeriodType   `json:"periodType"`
	Status     domain.PeriodStatus `json:"status"`
	ClosedAt   *time.Time          `json:"closedAt,omitempty"`
	ClosedBy   *string             `json:"closedBy,omitempty"`
	ReopenedAt *time.Time          `json:"reopenedAt,omitempty"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:   p.PeriodID,
		Name:       p.Name,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		FiscalYear: p.FiscalYear,
		PeriodType: p.PeriodType,
		Status:     p.Status,
		ClosedAt:   p.ClosedAt,
		ClosedBy:   p.ClosedBy,
		ReopenedAt: p.ReopenedAt,
	}
}

// ToPeriodResponses converts a slice of domain.Period to []PeriodResponse.
func ToPeriodResponses(periods []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}
