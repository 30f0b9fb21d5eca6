package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vickinc/eazybizy/internal/core/ports/services"
	"github.com/vickinc/eazybizy/internal/dto"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// companyHandler handles HTTP requests related to companies (tenants).
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers the company routes and returns the
// per-company group other handlers nest under.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) *gin.RouterGroup {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:company_id", h.getCompany)
		companies.PATCH("/:company_id/settings", h.updateSettings)
	}
	return companies.Group("/:company_id")
}

// createCompany godoc
// @Summary Register a company
// @Description Creates a company with its reporting settings. The reporting currency defaults to the server default.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create company")
		return
	}

	logger.Info("Company created successfully", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.CompanyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCompaniesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCompanies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompanyResponse(companies))
}

// getCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", c.Param("company_id")))

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateSettings godoc
// @Summary Update reporting settings
// @Description Changes fiscal year start, reporting currency, accounting mode and statement options.
// @Tags companies
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param settings body dto.UpdateCompanySettingsRequest true "Settings to change"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{company_id}/settings [patch]
func (h *companyHandler) updateSettings(c *gin.Context) {
	companyID := c.Param("company_id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", companyID))
	var req dto.UpdateCompanySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompanySettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	company, err := h.companyService.UpdateCompanySettings(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update company settings")
		return
	}

	logger.Info("Company settings updated")
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
