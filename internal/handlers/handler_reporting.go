package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial statements.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/equity-changes", h.getEquityChanges)
		reports.GET("/bundle", h.getBundle)
	}
}

// getProfitAndLoss godoc
// @Summary Statement of profit or loss
// @Description Generates the P&L for a selected period. Data quality findings are returned in the validation list.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param selector query string false "thisMonth, lastMonth, thisQuarter, lastQuarter, thisYear, lastYear, allTime or custom" default(thisYear)
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param periodId query string false "Stored accounting period; takes precedence over selector"
// @Param comparative query bool false "Include prior period figures"
// @Param currency query string false "Reporting currency override"
// @Param skipInvalid query bool false "Skip invalid records instead of failing"
// @Success 200 {object} domain.StatementResult[domain.ProfitLossData]
// @Failure 400 {object} map[string]string "Invalid range, selector or currency"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	serveStatement(c, "profit and loss", h.reportingService.ProfitAndLoss)
}

// getBalanceSheet godoc
// @Summary Statement of financial position
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param selector query string false "Period selector" default(thisYear)
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param periodId query string false "Stored accounting period"
// @Param comparative query bool false "Include prior period figures"
// @Param currency query string false "Reporting currency override"
// @Success 200 {object} domain.StatementResult[domain.BalanceSheetData]
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	serveStatement(c, "balance sheet", h.reportingService.BalanceSheet)
}

// getCashFlow godoc
// @Summary Statement of cash flows (indirect method)
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param selector query string false "Period selector" default(thisYear)
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param periodId query string false "Stored accounting period"
// @Param currency query string false "Reporting currency override"
// @Success 200 {object} domain.StatementResult[domain.CashFlowData]
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	serveStatement(c, "cash flow", h.reportingService.CashFlow)
}

// getEquityChanges godoc
// @Summary Statement of changes in equity
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param selector query string false "Period selector" default(thisYear)
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param periodId query string false "Stored accounting period"
// @Param currency query string false "Reporting currency override"
// @Success 200 {object} domain.StatementResult[domain.EquityChangesData]
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/equity-changes [get]
func (h *reportingHandler) getEquityChanges(c *gin.Context) {
	serveStatement(c, "equity changes", h.reportingService.EquityChanges)
}

// getBundle godoc
// @Summary All statements with cross-statement reconciliation
// @Description Builds the four statements concurrently and checks that they tie together.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param selector query string false "Period selector" default(thisYear)
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param periodId query string false "Stored accounting period"
// @Param comparative query bool false "Include prior period figures"
// @Param currency query string false "Reporting currency override"
// @Success 200 {object} domain.StatementBundle
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/bundle [get]
func (h *reportingHandler) getBundle(c *gin.Context) {
	serveStatement(c, "statement bundle", h.reportingService.Bundle)
}

// serveStatement binds the statement query, runs generate and writes the result.
func serveStatement[T any](c *gin.Context, name string, generate func(context.Context, string, dto.StatementRequest) (*T, error)) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("statement", name),
	)

	req, ok := bindStatementRequest(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to generate statement", slog.String("selector", req.Selector), slog.String("period_id", req.PeriodID))
	result, err := generate(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate "+name)
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindStatementRequest(c *gin.Context, logger *slog.Logger) (dto.StatementRequest, bool) {
	var q dto.StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return dto.StatementRequest{}, false
	}

	req := dto.StatementRequest{
		Selector:          q.Selector,
		PeriodID:          q.PeriodID,
		Comparative:       q.Comparative,
		ReportingCurrency: q.Currency,
		SkipInvalid:       q.SkipInvalid,
	}
	for _, d := range []struct {
		raw string
		dst **time.Time
		key string
	}{{q.From, &req.From, "from"}, {q.To, &req.To, "to"}} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, d.raw)
		if err != nil {
			logger.Warn("Invalid statement date", slog.String(d.key, d.raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + d.key + " date format. Use YYYY-MM-DD"})
			return dto.StatementRequest{}, false
		}
		*d.dst = &t
	}
	return req, true
}
