package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/assocamal/charity_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to incomes.
type incomeHandler struct {
	incomeService  portssvc.IncomeSvcFacade
	closingService portssvc.FiscalYearClosingSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(incomeService portssvc.IncomeSvcFacade, closingService portssvc.FiscalYearClosingSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService:  incomeService,
		closingService: closingService,
	}
}

// registerIncomeRoutes registers routes related to incomes.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade, closingService portssvc.FiscalYearClosingSvcFacade) {
	h := newIncomeHandler(incomeService, closingService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.GET("/:incomeID", h.getIncome)
		incomes.POST("/:incomeID/approve", h.approveIncome)
		incomes.POST("/:incomeID/transfer-to-bank", h.transferIncomeToBank)
	}
}

// createIncome godoc
// @Summary Create a draft income
// @Description Creates a new draft income in the active fiscal year. Bank wire incomes must name their destination account.
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} SuccessResponse{data=dto.IncomeResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year not active"
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncomes godoc
// @Summary List incomes of a fiscal year
// @Tags incomes
// @Produce json
// @Param fiscalYearID query string true "Fiscal Year ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} SuccessResponse{data=dto.ListIncomesResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.incomeService.ListIncomes(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

// getIncome godoc
// @Summary Get an income
// @Tags incomes
// @Produce json
// @Param incomeID path string true "Income ID"
// @Success 200 {object} SuccessResponse{data=dto.IncomeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /incomes/{incomeID} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("incomeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToIncomeResponse(income))
}

// approveIncome godoc
// @Summary Approve a draft income
// @Description Approves a draft income. Bank wire incomes credit their bank account at this point.
// @Tags incomes
// @Produce json
// @Param incomeID path string true "Income ID"
// @Success 200 {object} SuccessResponse{data=dto.IncomeResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already approved"
// @Security BearerAuth
// @Router /incomes/{incomeID}/approve [post]
func (h *incomeHandler) approveIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	income, err := h.incomeService.ApproveIncome(c.Request.Context(), c.Param("incomeID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Income approved", slog.String("income_id", income.IncomeID))
	respondData(c, http.StatusOK, dto.ToIncomeResponse(income))
}

// transferIncomeToBank godoc
// @Summary Deposit an approved cash/cheque income into a bank account
// @Description One-way, one-time bank deposit of an approved cash or cheque income. Credits the target account.
// @Tags incomes
// @Accept json
// @Produce json
// @Param incomeID path string true "Income ID"
// @Param transfer body dto.TransferIncomeToBankRequest true "Target bank account"
// @Success 200 {object} SuccessResponse{data=dto.IncomeResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not approved, wrong payment method or already transferred"
// @Security BearerAuth
// @Router /incomes/{incomeID}/transfer-to-bank [post]
func (h *incomeHandler) transferIncomeToBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferIncomeToBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	income, err := h.closingService.TransferIncomeToBank(c.Request.Context(), c.Param("incomeID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Income transferred to bank",
		slog.String("income_id", income.IncomeID),
		slog.String("bank_account_id", req.BankAccountID))
	respondData(c, http.StatusOK, dto.ToIncomeResponse(income))
}
