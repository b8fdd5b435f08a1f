package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/assocamal/charity_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler handles HTTP requests related to fiscal years and closing.
type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
	closingService    portssvc.FiscalYearClosingSvcFacade
}

// newFiscalYearHandler creates a new fiscalYearHandler.
func newFiscalYearHandler(fy portssvc.FiscalYearSvcFacade, closing portssvc.FiscalYearClosingSvcFacade) *fiscalYearHandler {
	return &fiscalYearHandler{
		fiscalYearService: fy,
		closingService:    closing,
	}
}

// registerFiscalYearRoutes registers fiscal year and closing workflow routes.
func registerFiscalYearRoutes(rg *gin.RouterGroup, fy portssvc.FiscalYearSvcFacade, closing portssvc.FiscalYearClosingSvcFacade) {
	h := newFiscalYearHandler(fy, closing)

	fiscalYears := rg.Group("/fiscal-years")
	{
		fiscalYears.GET("", h.listFiscalYears)
		fiscalYears.POST("", h.createFiscalYear)
		fiscalYears.GET("/:fiscalYearID", h.getFiscalYear)
		fiscalYears.GET("/:fiscalYearID/closing-status", h.getClosingStatus)
		fiscalYears.GET("/:fiscalYearID/closing-summary", h.getClosingSummary)
		fiscalYears.POST("/:fiscalYearID/close", h.closeFiscalYear)
		fiscalYears.GET("/:fiscalYearID/untransferred-incomes", h.listUntransferredIncomes)
	}
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Description Lists all fiscal years with their budget and period totals, newest first.
// @Tags fiscal-years
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.FiscalYearTotalsResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years [get]
func (h *fiscalYearHandler) listFiscalYears(c *gin.Context) {
	totals, err := h.fiscalYearService.ListFiscalYears(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToFiscalYearTotalsResponses(totals))
}

// createFiscalYear godoc
// @Summary Create a fiscal year
// @Description Creates a new fiscal year with its budget. The first year ever created becomes active.
// @Tags fiscal-years
// @Accept json
// @Produce json
// @Param fiscalYear body dto.CreateFiscalYearRequest true "Fiscal year details"
// @Success 201 {object} SuccessResponse{data=dto.FiscalYearResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Year already exists"
// @Security BearerAuth
// @Router /fiscal-years [post]
func (h *fiscalYearHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	fy, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Fiscal year created", slog.String("fiscal_year_id", fy.FiscalYearID), slog.Int("year", fy.Year))
	respondData(c, http.StatusCreated, dto.ToFiscalYearResponse(fy))
}

// getFiscalYear godoc
// @Summary Get a fiscal year
// @Tags fiscal-years
// @Produce json
// @Param fiscalYearID path string true "Fiscal Year ID"
// @Success 200 {object} SuccessResponse{data=dto.FiscalYearResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID} [get]
func (h *fiscalYearHandler) getFiscalYear(c *gin.Context) {
	fy, err := h.fiscalYearService.GetFiscalYearByID(c.Request.Context(), c.Param("fiscalYearID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// getClosingStatus godoc
// @Summary Get the closing status of a fiscal year
// @Description Returns the lightweight closability status: pending counts and the canClose flag.
// @Tags fiscal-years
// @Produce json
// @Param fiscalYearID path string true "Fiscal Year ID"
// @Success 200 {object} SuccessResponse{data=dto.ClosingStatusResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID}/closing-status [get]
func (h *fiscalYearHandler) getClosingStatus(c *gin.Context) {
	status, err := h.closingService.GetClosingStatus(c.Request.Context(), c.Param("fiscalYearID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToClosingStatusResponse(status))
}

// getClosingSummary godoc
// @Summary Get the closing summary of a fiscal year
// @Description Computes the full closing summary: draft counts, untransferred incomes, bank totals, cash position and validation messages.
// @Tags fiscal-years
// @Produce json
// @Param fiscalYearID path string true "Fiscal Year ID"
// @Success 200 {object} SuccessResponse{data=dto.ClosingSummaryResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID}/closing-summary [get]
func (h *fiscalYearHandler) getClosingSummary(c *gin.Context) {
	summary, err := h.closingService.GetClosingSummary(c.Request.Context(), c.Param("fiscalYearID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToClosingSummaryResponse(summary))
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Irreversibly closes the fiscal year and rolls the carryover into the successor year.
// @Tags fiscal-years
// @Produce json
// @Param fiscalYearID path string true "Fiscal Year ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not allowed to close"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Closing preconditions not met"
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID}/close [post]
func (h *fiscalYearHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	result, err := h.closingService.CloseFiscalYear(c.Request.Context(), c.Param("fiscalYearID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Fiscal year closed",
		slog.Int("closed_year", result.ClosedYear),
		slog.Int("next_year", result.NextYear),
		slog.String("carryover", result.CarryoverValue.String()))

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"nextYear":       result.NextYear,
		"carryoverValue": result.CarryoverValue,
		"message":        fmt.Sprintf("Fiscal year %d closed, %d is now active", result.ClosedYear, result.NextYear),
	})
}

// listUntransferredIncomes godoc
// @Summary List untransferred incomes of a fiscal year
// @Description Lists approved cash/cheque incomes that still have to be deposited into a bank account.
// @Tags fiscal-years
// @Produce json
// @Param fiscalYearID path string true "Fiscal Year ID"
// @Success 200 {object} SuccessResponse{data=[]dto.IncomeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fiscal-years/{fiscalYearID}/untransferred-incomes [get]
func (h *fiscalYearHandler) listUntransferredIncomes(c *gin.Context) {
	incomes, err := h.closingService.ListUntransferredIncomes(c.Request.Context(), c.Param("fiscalYearID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToIncomeResponses(incomes))
}
