package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vickinc/eazybizy/internal/apperrors"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
)

var (
	ErrPeriodOverlap       = fmt.Errorf("%w: period overlaps another period of the same fiscal year", apperrors.ErrConflict)
	ErrPeriodAlreadyClosed = fmt.Errorf("%w: period is already closed", apperrors.ErrConflict)
	ErrPeriodNotClosed     = fmt.Errorf("%w: only a closed period can be reopened", apperrors.ErrConflict)
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new accounting period service.
func NewPeriodService(repo portsrepo.PeriodRepositoryFacade, opts ...Option) portssvc.PeriodSvcFacade {
	svc := &periodService{periodRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, userID string) (*domain.Period, error) {
	if !req.PeriodType.IsValid() {
		return nil, fmt.Errorf("%w: unknown period type %q", apperrors.ErrValidation, req.PeriodType)
	}
	r := domain.NewDateRange(req.StartDate, req.EndDate)
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("%w: period ends %s before it starts %s", apperrors.ErrInvalidRange,
			r.End.Format("2006-01-02"), r.Start.Format("2006-01-02"))
	}

	existing, err := s.periodRepo.ListPeriods(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	for _, p := range existing {
		if p.FiscalYear == req.FiscalYear && p.Range().Overlaps(r) {
			return nil, fmt.Errorf("%w: %q", ErrPeriodOverlap, p.Name)
		}
	}

	now := s.Now()
	period := domain.Period{
		PeriodID:   uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		StartDate:  r.Start,
		EndDate:    r.End,
		FiscalYear: req.FiscalYear,
		PeriodType: req.PeriodType,
		Status:     domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save period", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	s.LogInfo(ctx, "Period created", slog.String("period_id", period.PeriodID), slog.String("company_id", companyID))
	return &period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, companyID, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find period", slog.String("period_id", periodID))
		}
		return nil, err
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, companyID string) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod moves an open period to closed and stamps who closed it.
func (s *periodService) ClosePeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error) {
	period, err := s.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, err
	}
	if period.IsClosed() {
		return nil, ErrPeriodAlreadyClosed
	}

	now := s.Now()
	closedBy := userID
	period.Status = domain.PeriodClosed
	period.ClosedAt = &now
	period.ClosedBy = &closedBy
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID
	if err := s.periodRepo.UpdatePeriodStatus(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to close period", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to close period: %w", err)
	}

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID), slog.String("user_id", userID))
	return period, nil
}

// ReopenPeriod moves a closed period back to open. The close stamps are kept.
func (s *periodService) ReopenPeriod(ctx context.Context, companyID, periodID, userID string) (*domain.Period, error) {
	period, err := s.GetPeriodByID(ctx, companyID, periodID)
	if err != nil {
		return nil, err
	}
	if !period.IsClosed() {
		return nil, ErrPeriodNotClosed
	}

	now := s.Now()
	period.Status = domain.PeriodOpen
	period.ReopenedAt = &now
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID
	if err := s.periodRepo.UpdatePeriodStatus(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to reopen period", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to reopen period: %w", err)
	}

	s.LogInfo(ctx, "Period reopened", slog.String("period_id", periodID), slog.String("user_id", userID))
	return period, nil
}
