package dto

import (
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to create a new draft transfer.
type CreateTransferRequest struct {
	FiscalYearID  string          `json:"fiscalYearID" binding:"required,uuid"`
	FromAccountID string          `json:"fromAccountID" binding:"required,uuid"`
	ToAccountID   string          `json:"toAccountID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Remarks       string          `json:"remarks"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID    string          `json:"transferID"`
	FiscalYearID  string          `json:"fiscalYearID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListTransfersResponse is a page of transfers plus the cursor for the next page.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID,
		FiscalYearID:  t.FiscalYearID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Status:        string(t.Status),
		ApprovedBy:    t.ApprovedBy,
		ApprovedAt:    t.ApprovedAt,
		Remarks:       t.Remarks,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

// ToTransferResponses converts a slice of domain.Transfer to []TransferResponse.
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}
