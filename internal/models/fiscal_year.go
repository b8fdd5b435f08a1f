package models

import "github.com/shopspring/decimal"

// FiscalYear is the database representation of a fiscal year row.
type FiscalYear struct {
	FiscalYearID string `db:"fiscal_year_id"`
	Year         int    `db:"year"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Budget is the database representation of a budget row (1:1 with fiscal_years).
type Budget struct {
	BudgetID          string          `db:"budget_id"`
	FiscalYearID      string          `db:"fiscal_year_id"`
	CurrentAmount     decimal.Decimal `db:"current_amount"`
	CarryoverPrevYear decimal.Decimal `db:"carryover_prev_year"`
	CarryoverNextYear decimal.Decimal `db:"carryover_next_year"`
	AuditFields
}

// BankAccount is the database representation of a bank account row.
type BankAccount struct {
	BankAccountID string          `db:"bank_account_id"`
	Label         string          `db:"label"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
