package dto

import (
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to create a new draft income.
type CreateIncomeRequest struct {
	FiscalYearID  string          `json:"fiscalYearID" binding:"required,uuid"`
	SubBudget     string          `json:"subBudget" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	DonorRef      string          `json:"donorRef"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,paymentmethod"`
	BankAccountID *string         `json:"bankAccountID"` // Required for bank wires, rejected otherwise
	Remarks       string          `json:"remarks"`
}

// IncomeResponse defines the data returned for an income.
type IncomeResponse struct {
	IncomeID      string          `json:"incomeID"`
	FiscalYearID  string          `json:"fiscalYearID"`
	SubBudget     string          `json:"subBudget"`
	Category      string          `json:"category"`
	DonorRef      string          `json:"donorRef,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	BankAccountID *string         `json:"bankAccountID,omitempty"`
	TransferredAt *time.Time      `json:"transferredAt,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListIncomesResponse is a page of incomes plus the cursor for the next page.
type ListIncomesResponse struct {
	Incomes   []IncomeResponse `json:"incomes"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:      i.IncomeID,
		FiscalYearID:  i.FiscalYearID,
		SubBudget:     i.SubBudget,
		Category:      i.Category,
		DonorRef:      i.DonorRef,
		Amount:        i.Amount,
		PaymentMethod: string(i.PaymentMethod),
		Status:        string(i.Status),
		ApprovedBy:    i.ApprovedBy,
		ApprovedAt:    i.ApprovedAt,
		BankAccountID: i.BankAccountID,
		TransferredAt: i.TransferredAt,
		Remarks:       i.Remarks,
		CreatedAt:     i.CreatedAt,
		CreatedBy:     i.CreatedBy,
	}
}

// ToIncomeResponses converts a slice of domain.Income to []IncomeResponse.
func ToIncomeResponses(incomes []domain.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		responses[i] = ToIncomeResponse(&incomes[i])
	}
	return responses
}
