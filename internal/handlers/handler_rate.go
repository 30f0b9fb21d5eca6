package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vickinc/eazybizy/internal/core/domain"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

const dateLayout = "2006-01-02"

// rateHandler exposes the company's currency rate table.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := &rateHandler{rateService: rateService}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.PUT("", h.upsertRate)
	}
}

// listRates godoc
// @Summary Get the currency rate table
// @Description Returns the latest rate per currency effective on asOf.
// @Tags rates
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Effective date (YYYY-MM-DD)" default(today)
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /companies/{company_id}/rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	asOf, ok := parseDateQuery(c, logger, "asOf")
	if !ok {
		return
	}

	rates, err := h.rateService.ListRates(c.Request.Context(), companyID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponses(rates))
}

// upsertRate godoc
// @Summary Set a currency rate
// @Description Stores the value of one unit of the currency in the base currency.
// @Tags rates
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param rate body dto.UpsertRateRequest true "Rate"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid rate table"
// @Security BearerAuth
// @Router /companies/{company_id}/rates [put]
func (h *rateHandler) upsertRate(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rate, err := h.rateService.UpsertRate(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to store rate")
		return
	}

	logger.Info("Rate stored", slog.String("currency", rate.Code), slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusOK, dto.ToRateResponses([]domain.CurrencyRate{*rate})[0])
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter, defaulting to today (UTC).
func parseDateQuery(c *gin.Context, logger *slog.Logger, key string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		logger.Warn("Invalid date query parameter", slog.String(key, raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + " date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
