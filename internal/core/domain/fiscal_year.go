package domain

import "github.com/shopspring/decimal"

// FiscalYear is a yearly accounting period. At most one fiscal year is active
// at any time; closing a year deactivates it and activates its successor.
type FiscalYear struct {
	FiscalYearID string `json:"fiscalYearID"` // Primary Key (UUID)
	Year         int    `json:"year"`         // Calendar year, unique
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Budget holds the monetary envelope of a fiscal year (1:1).
// CarryoverNextYear stays zero until the owning year is closed.
type Budget struct {
	BudgetID          string          `json:"budgetID"`
	FiscalYearID      string          `json:"fiscalYearID"` // FK -> fiscal_years, unique
	CurrentAmount     decimal.Decimal `json:"currentAmount"`
	CarryoverPrevYear decimal.Decimal `json:"carryoverPrevYear"`
	CarryoverNextYear decimal.Decimal `json:"carryoverNextYear"`
	AuditFields
}

// TotalAvailable is the spendable envelope for the year.
func (b Budget) TotalAvailable() decimal.Decimal {
	return b.CurrentAmount.Add(b.CarryoverPrevYear)
}

// FiscalYearTotals is the read model for the fiscal year listing: the year,
// its budget figures and the approved income/expense sums for the period.
type FiscalYearTotals struct {
	FiscalYear
	Budget         Budget          `json:"budget"`
	TotalIncomes   decimal.Decimal `json:"totalIncomes"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalAvailable decimal.Decimal `json:"totalAvailable"`
}
