package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vickinc/eazybizy/internal/core/domain"
	portsrepo "github.com/vickinc/eazybizy/internal/core/ports/repositories"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/core/reporting"
	"github.com/vickinc/eazybizy/internal/dto"
)

// reportingService implements the ReportingService interface. It gathers a
// snapshot from the repositories and hands it to the reporting core, which
// performs no I/O.
type reportingService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	loader      snapshotLoader
	timeout     time.Duration
}

// NewReportingService creates a new reporting service. A positive timeout
// bounds every statement run.
func NewReportingService(repos portsrepo.RepositoryProvider, timeout time.Duration, opts ...Option) portssvc.ReportingService {
	svc := &reportingService{
		companyRepo: repos.CompanyRepo,
		periodRepo:  repos.PeriodRepo,
		loader:      newSnapshotLoader(repos),
		timeout:     timeout,
	}
	svc.apply(opts)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.ProfitLossData], error) {
	return buildOne(ctx, s, companyID, req, reporting.BuildProfitLoss)
}

func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.BalanceSheetData], error) {
	return buildOne(ctx, s, companyID, req, reporting.BuildBalanceSheet)
}

func (s *reportingService) CashFlow(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.CashFlowData], error) {
	return buildOne(ctx, s, companyID, req, reporting.BuildCashFlow)
}

func (s *reportingService) EquityChanges(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementResult[domain.EquityChangesData], error) {
	return buildOne(ctx, s, companyID, req, reporting.BuildEquityChanges)
}

// Bundle builds all four statements concurrently and reconciles them.
func (s *reportingService) Bundle(ctx context.Context, companyID string, req dto.StatementRequest) (*domain.StatementBundle, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in, err := s.input(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	bundle, err := reporting.GenerateBundle(ctx, *in)
	if err != nil {
		s.LogError(ctx, err, "Statement bundle generation failed", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Statement bundle generated",
		slog.String("company_id", companyID),
		slog.String("from", bundle.Period.Start.Format(time.DateOnly)),
		slog.String("to", bundle.Period.End.Format(time.DateOnly)),
		slog.Int("reconciliation_issues", len(bundle.Reconciliation)))
	return bundle, nil
}

func buildOne[T any](ctx context.Context, s *reportingService, companyID string, req dto.StatementRequest, build func(*reporting.Workbook) domain.StatementResult[T]) (*domain.StatementResult[T], error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	in, err := s.input(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	w, err := reporting.Prepare(*in)
	if err != nil {
		s.LogError(ctx, err, "Statement input rejected", slog.String("company_id", companyID))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := build(w)

	s.LogInfo(ctx, "Statement generated",
		slog.String("company_id", companyID),
		slog.String("statement", string(res.Statement)),
		slog.Bool("available", res.Available),
		slog.Int("issues", len(res.Validation)))
	return &res, nil
}

func (s *reportingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// input resolves the requested period and assembles the statement input.
func (s *reportingService) input(ctx context.Context, companyID string, req dto.StatementRequest) (*reporting.Input, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	settings := company.Settings
	if cur := reporting.NormalizeCurrency(req.ReportingCurrency); cur != "" {
		settings.ReportingCurrency = cur
	}

	now := s.Now()
	sel, period, err := s.resolvePeriod(ctx, companyID, settings, req, now)
	if err != nil {
		return nil, err
	}
	var prior *domain.DateRange
	if req.Comparative || settings.IFRS.ShowComparatives {
		if p, ok := reporting.PriorRange(sel, period, settings.FiscalYearStartDay); ok {
			prior = &p
		}
	}

	snap, err := s.loader.load(ctx, companyID, period.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("company_id", companyID))
		return nil, err
	}
	norm, err := reporting.Normalize(snap.journals, snap.accounts, snap.periods, reporting.NormalizeOptions{SkipInvalid: req.SkipInvalid})
	if err != nil {
		return nil, err
	}

	return &reporting.Input{
		CompanyID:       companyID,
		Period:          period,
		PriorPeriod:     prior,
		Entries:         norm.Entries,
		Accounts:        snap.accounts,
		InitialBalances: snap.initials,
		Rates:           rateTableOrBase(snap.rates, settings.ReportingCurrency),
		Settings:        settings,
		CompanyInfo:     company.Info,
		Options: reporting.Options{
			SkipInvalid:       req.SkipInvalid,
			SkipUnconvertible: req.SkipInvalid,
		},
		Issues: norm.Issues,
		Now:    now,
	}, nil
}

// resolvePeriod turns the request into a date range. A stored period wins
// over a selector; the default selector is thisYear.
func (s *reportingService) resolvePeriod(ctx context.Context, companyID string, settings domain.CompanySettings, req dto.StatementRequest, now time.Time) (reporting.Selector, domain.DateRange, error) {
	if req.PeriodID != "" {
		p, err := s.periodRepo.FindPeriodByID(ctx, companyID, req.PeriodID)
		if err != nil {
			return "", domain.DateRange{}, err
		}
		return reporting.Custom, p.Range(), nil
	}

	sel := reporting.ThisYear
	if req.Selector != "" {
		parsed, err := reporting.ParseSelector(req.Selector)
		if err != nil {
			return "", domain.DateRange{}, err
		}
		sel = parsed
	} else if req.From != nil || req.To != nil {
		sel = reporting.Custom
	}

	var custom *domain.DateRange
	if sel == reporting.Custom && req.From != nil && req.To != nil {
		r := domain.NewDateRange(*req.From, *req.To)
		custom = &r
	}
	r, err := reporting.Resolve(sel, settings.FiscalYearStartMonth, settings.FiscalYearStartDay, custom, now)
	if err != nil {
		return "", domain.DateRange{}, err
	}
	return sel, r, nil
}
