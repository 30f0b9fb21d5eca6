package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvc
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvc) {
	h := &invoiceHandler{invoiceService: invoiceService}
	rg.POST("/invoices/totals", h.calculateTotals)
}

// calculateTotals godoc
// @Summary Compute invoice totals
// @Description Subtotal excludes tax; tax is subtotal times rate percent; all figures rounded to cents.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.InvoiceTotalsRequest true "Invoice lines"
// @Success 200 {object} dto.InvoiceTotalsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /invoices/totals [post]
func (h *invoiceHandler) calculateTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.CalculateTotals(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate invoice totals")
		return
	}
	c.JSON(http.StatusOK, resp)
}
