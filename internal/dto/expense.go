package dto

import (
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to create a new draft expense.
type CreateExpenseRequest struct {
	FiscalYearID   string          `json:"fiscalYearID" binding:"required,uuid"`
	SubBudget      string          `json:"subBudget" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	BeneficiaryRef string          `json:"beneficiaryRef"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod  string          `json:"paymentMethod" binding:"required,paymentmethod"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID      string          `json:"expenseID"`
	FiscalYearID   string          `json:"fiscalYearID"`
	SubBudget      string          `json:"subBudget"`
	Category       string          `json:"category"`
	BeneficiaryRef string          `json:"beneficiaryRef,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"paymentMethod"`
	Status         string          `json:"status"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ListExpensesResponse is a page of expenses plus the cursor for the next page.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:      e.ExpenseID,
		FiscalYearID:   e.FiscalYearID,
		SubBudget:      e.SubBudget,
		Category:       e.Category,
		BeneficiaryRef: e.BeneficiaryRef,
		Amount:         e.Amount,
		PaymentMethod:  string(e.PaymentMethod),
		Status:         string(e.Status),
		ApprovedBy:     e.ApprovedBy,
		ApprovedAt:     e.ApprovedAt,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
