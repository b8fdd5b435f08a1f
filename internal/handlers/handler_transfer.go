package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/assocamal/charity_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests related to inter-account transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(transferService portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: transferService}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/:transferID", h.getTransfer)
		transfers.POST("/:transferID/approve", h.approveTransfer)
	}
}

// createTransfer godoc
// @Summary Create a draft transfer
// @Description Creates a draft transfer between two distinct bank accounts.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} SuccessResponse{data=dto.TransferResponse}
// @Failure 400 {object} ErrorResponse "Same account on both sides or non-positive amount"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Fiscal year not active"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers of a fiscal year
// @Tags transfers
// @Produce json
// @Param fiscalYearID query string true "Fiscal Year ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} SuccessResponse{data=dto.ListTransfersResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transferService.ListTransfers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

// getTransfer godoc
// @Summary Get a transfer
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} SuccessResponse{data=dto.TransferResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), c.Param("transferID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToTransferResponse(transfer))
}

// approveTransfer godoc
// @Summary Approve a draft transfer
// @Description Approves a draft transfer, debiting the source account and crediting the destination atomically.
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} SuccessResponse{data=dto.TransferResponse}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already approved or insufficient balance"
// @Security BearerAuth
// @Router /transfers/{transferID}/approve [post]
func (h *transferHandler) approveTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Message: "Unauthorized"})
		return
	}

	transfer, err := h.transferService.ApproveTransfer(c.Request.Context(), c.Param("transferID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transfer approved", slog.String("transfer_id", transfer.TransferID))
	respondData(c, http.StatusOK, dto.ToTransferResponse(transfer))
}
