package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// journalHandler handles HTTP requests related to journals. Posted amounts
// change only through reversal or supersession.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journal_id", h.getJournal)
		journals.PATCH("/:journal_id", h.updateJournal)
		journals.POST("/:journal_id/reverse", h.reverseJournal)
		journals.POST("/:journal_id/supersede", h.supersedeJournal)
	}
}

// createJournal godoc
// @Summary Post a journal
// @Description Posts a balanced journal. Lines must share the journal currency and the date must fall in an open period.
// @Tags journals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param journal body dto.CreateJournalRequest true "Journal and its lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Unbalanced or invalid journal"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Period closed"
// @Security BearerAuth
// @Router /companies/{company_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post journal")
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Newest first, paginated with an opaque nextToken.
// @Tags journals
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param includeReversals query bool false "Include reversal journals"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /companies/{company_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce json
// @Param company_id path string true "Company ID"
// @Param journal_id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	companyID, journalID := c.Param("company_id"), c.Param("journal_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("journal_id", journalID),
	)

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), companyID, journalID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// updateJournal godoc
// @Summary Update a journal description
// @Tags journals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param journal_id path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Fields to change"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id} [patch]
func (h *journalHandler) updateJournal(c *gin.Context) {
	companyID, journalID := c.Param("company_id"), c.Param("journal_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("journal_id", journalID),
	)
	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), companyID, journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// reverseJournal godoc
// @Summary Reverse a journal
// @Description Posts a mirror journal that cancels the original. A journal can be reversed once.
// @Tags journals
// @Produce json
// @Param company_id path string true "Company ID"
// @Param journal_id path string true "Journal ID"
// @Success 201 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Already reversed or period closed"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	companyID, journalID := c.Param("company_id"), c.Param("journal_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("journal_id", journalID),
	)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseJournal(c.Request.Context(), companyID, journalID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse journal")
		return
	}

	logger.Info("Journal reversed", slog.String("reversal_id", reversal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversal))
}

// supersedeJournal godoc
// @Summary Supersede a journal
// @Description Reverses a journal and posts its corrected replacement.
// @Tags journals
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param journal_id path string true "Journal ID"
// @Param journal body dto.CreateJournalRequest true "Replacement journal"
// @Success 201 {object} dto.SupersedeJournalResponse
// @Failure 400 {object} map[string]string "Invalid replacement"
// @Failure 409 {object} map[string]string "Already reversed or period closed"
// @Security BearerAuth
// @Router /companies/{company_id}/journals/{journal_id}/supersede [post]
func (h *journalHandler) supersedeJournal(c *gin.Context) {
	companyID, journalID := c.Param("company_id"), c.Param("journal_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("journal_id", journalID),
	)
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SupersedeJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reversal, replacement, err := h.journalService.SupersedeJournal(c.Request.Context(), companyID, journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to supersede journal")
		return
	}

	logger.Info("Journal superseded",
		slog.String("reversal_id", reversal.JournalID),
		slog.String("replacement_id", replacement.JournalID),
	)
	c.JSON(http.StatusCreated, dto.SupersedeJournalResponse{
		Reversal:    dto.ToJournalResponse(reversal),
		Replacement: dto.ToJournalResponse(replacement),
	})
}
