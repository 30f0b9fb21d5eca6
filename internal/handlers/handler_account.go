package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.POST("/seed", h.seedAccounts)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the company's chart of accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create account", slog.String("account_code", req.Code), slog.String("currency_code", req.CurrencyCode))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// seedAccounts godoc
// @Summary Seed the default chart of accounts
// @Description Creates the default accounts for the company's accounting mode. Existing codes are skipped.
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.SeedAccountsResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/seed [post]
func (h *accountHandler) seedAccounts(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.accountService.SeedDefaultChart(c.Request.Context(), companyID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to seed accounts")
		return
	}

	logger.Info("Default chart seeded", slog.Int("created", resp.Created), slog.Int("skipped", resp.Skipped))
	c.JSON(http.StatusOK, resp)
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	companyID, accountID := c.Param("company_id"), c.Param("account_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("account_id", accountID),
	)

	account, err := h.accountService.GetAccountByID(c.Request.Context(), companyID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates descriptive fields. Type and currency are fixed.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Account details to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	companyID, accountID := c.Param("company_id"), c.Param("account_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("account_id", accountID),
	)
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), companyID, accountID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.ToAccountResponse(updated))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks an account inactive. Posted history is kept.
// @Tags accounts
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account already inactive"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	companyID, accountID := c.Param("company_id"), c.Param("account_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("company_id", companyID),
		slog.String("account_id", accountID),
	)

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), companyID, accountID, userID); err != nil {
		respondError(c, logger, err, "Failed to deactivate account")
		return
	}

	logger.Info("Account deactivated")
	c.Status(http.StatusNoContent)
}
