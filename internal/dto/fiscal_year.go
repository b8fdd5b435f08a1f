package dto

import (
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFiscalYearRequest defines the data needed to create a new fiscal year.
type CreateFiscalYearRequest struct {
	Year          int              `json:"year" binding:"required,min=2000,max=2200"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"` // Optional opening budget, defaults to zero
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string    `json:"fiscalYearID"`
	Year         int       `json:"year"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// BudgetResponse defines the budget figures returned alongside a fiscal year.
type BudgetResponse struct {
	BudgetID          string          `json:"budgetID"`
	CurrentAmount     decimal.Decimal `json:"currentAmount"`
	CarryoverPrevYear decimal.Decimal `json:"carryoverPrevYear"`
	CarryoverNextYear decimal.Decimal `json:"carryoverNextYear"`
}

// FiscalYearTotalsResponse is a fiscal year with its budget and period totals.
type FiscalYearTotalsResponse struct {
	FiscalYearResponse
	Budget         BudgetResponse  `json:"budget"`
	TotalIncomes   decimal.Decimal `json:"totalIncomes"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalAvailable decimal.Decimal `json:"totalAvailable"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to FiscalYearResponse DTO
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Year:         fy.Year,
		IsActive:     fy.IsActive,
		CreatedAt:    fy.CreatedAt,
		CreatedBy:    fy.CreatedBy,
	}
}

// ToFiscalYearTotalsResponse converts a domain.FiscalYearTotals to its DTO.
func ToFiscalYearTotalsResponse(t *domain.FiscalYearTotals) FiscalYearTotalsResponse {
	return FiscalYearTotalsResponse{
		FiscalYearResponse: ToFiscalYearResponse(&t.FiscalYear),
		Budget: BudgetResponse{
			BudgetID:          t.Budget.BudgetID,
			CurrentAmount:     t.Budget.CurrentAmount,
			CarryoverPrevYear: t.Budget.CarryoverPrevYear,
			CarryoverNextYear: t.Budget.CarryoverNextYear,
		},
		TotalIncomes:   t.TotalIncomes,
		TotalExpenses:  t.TotalExpenses,
		TotalAvailable: t.TotalAvailable,
	}
}

// ToFiscalYearTotalsResponses converts a slice of domain.FiscalYearTotals.
func ToFiscalYearTotalsResponses(ts []domain.FiscalYearTotals) []FiscalYearTotalsResponse {
	responses := make([]FiscalYearTotalsResponse, len(ts))
	for i := range ts {
		responses[i] = ToFiscalYearTotalsResponse(&ts[i])
	}
	return responses
}
