package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// balanceHandler serves opening balances and derived account balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	rg.GET("/balances", h.getBalances)
	initial := rg.Group("/initial-balances")
	{
		initial.GET("", h.listInitialBalances)
		initial.PUT("", h.setInitialBalance)
	}
}

// getBalances godoc
// @Summary Account balances at a date
// @Description Balances per currency segment plus the converted total in the reporting currency.
// @Tags balances
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Balance date (YYYY-MM-DD)" default(today)
// @Param currency query string false "Reporting currency override"
// @Success 200 {object} dto.BalancesResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id}/balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	asOf, ok := parseDateQuery(c, logger, "asOf")
	if !ok {
		return
	}

	resp, err := h.balanceService.Balances(c.Request.Context(), companyID, asOf, c.Query("currency"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listInitialBalances godoc
// @Summary List opening balances
// @Tags balances
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} dto.InitialBalanceResponse
// @Security BearerAuth
// @Router /companies/{company_id}/initial-balances [get]
func (h *balanceHandler) listInitialBalances(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	balances, err := h.balanceService.ListInitialBalances(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger, err, "Failed to list opening balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToInitialBalanceResponses(balances))
}

// setInitialBalance godoc
// @Summary Set an opening balance
// @Description Records the opening balance of a balance sheet account in one currency.
// @Tags balances
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param balance body dto.SetInitialBalanceRequest true "Opening balance"
// @Success 200 {object} dto.InitialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /companies/{company_id}/initial-balances [put]
func (h *balanceHandler) setInitialBalance(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.SetInitialBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetInitialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	balance, err := h.balanceService.SetInitialBalance(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to set opening balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToInitialBalanceResponse(balance))
}
