package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// periodHandler handles accounting periods and their close/reopen lifecycle.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:period_id", h.getPeriod)
		periods.POST("/:period_id/close", h.closePeriod)
		periods.POST("/:period_id/reopen", h.reopenPeriod)
	}
}

// createPeriod godoc
// @Summary Create an accounting period
// @Tags periods
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param period body dto.CreatePeriodRequest true "Period"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 409 {object} map[string]string "Overlaps an existing period"
// @Security BearerAuth
// @Router /companies/{company_id}/periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List accounting periods
// @Tags periods
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /companies/{company_id}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	periods, err := h.periodService.ListPeriods(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponses(periods))
}

// getPeriod godoc
// @Summary Get an accounting period
// @Tags periods
// @Produce json
// @Param company_id path string true "Company ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Security BearerAuth
// @Router /companies/{company_id}/periods/{period_id} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	companyID, periodID := c.Param("company_id"), c.Param("period_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("period_id", periodID))

	period, err := h.periodService.GetPeriodByID(c.Request.Context(), companyID, periodID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close an accounting period
// @Description Posting into a closed period is rejected until it is reopened.
// @Tags periods
// @Produce json
// @Param company_id path string true "Company ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 409 {object} map[string]string "Already closed"
// @Security BearerAuth
// @Router /companies/{company_id}/periods/{period_id}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	h.transition(c, "close")
}

// reopenPeriod godoc
// @Summary Reopen a closed accounting period
// @Tags periods
// @Produce json
// @Param company_id path string true "Company ID"
// @Param period_id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 409 {object} map[string]string "Period is not closed"
// @Security BearerAuth
// @Router /companies/{company_id}/periods/{period_id}/reopen [post]
func (h *periodHandler) reopenPeriod(c *gin.Context) {
	h.transition(c, "reopen")
}

func (h *periodHandler) transition(c *gin.Context, action string) {
	companyID, periodID := c.Param("company_id"), c.Param("period_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("period_id", periodID),
		slog.String("action", action),
	)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	apply := h.periodService.ClosePeriod
	if action == "reopen" {
		apply = h.periodService.ReopenPeriod
	}
	period, err := apply(c.Request.Context(), companyID, periodID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to "+action+" period")
		return
	}

	logger.Info("Period status changed", slog.String("status", string(period.Status)))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
