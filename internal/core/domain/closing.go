package domain

import "github.com/shopspring/decimal"

// ClosingAggregates are the raw per-year figures the closing computation is
// built from, read in a single repository pass.
type ClosingAggregates struct {
	DraftIncomes        int
	DraftExpenses       int
	DraftTransfers      int
	UntransferredCount  int             // Approved cash/cheque incomes not yet banked
	UntransferredAmount decimal.Decimal // Sum of those incomes
	BankTotal           decimal.Decimal // Sum of all bank account balances
	OverdrawnAccounts   []string        // Labels of accounts with a negative balance
}

// ClosingStatus is the lightweight closability view used by the status endpoint.
type ClosingStatus struct {
	FiscalYearID         string `json:"fiscalYearID"`
	Year                 int    `json:"year"`
	IsActive             bool   `json:"isActive"`
	PendingApprovals     int    `json:"pendingApprovals"`
	PendingBankTransfers int    `json:"pendingBankTransfers"`
	CanClose             bool   `json:"canClose"`
}

// ClosingSummary is the derived closability view of a fiscal year.
// It is never persisted.
type ClosingSummary struct {
	FiscalYearID         string          `json:"fiscalYearID"`
	Year                 int             `json:"year"`
	IsActive             bool            `json:"isActive"`
	UnapprovedIncomes    int             `json:"unapprovedIncomes"`
	UnapprovedExpenses   int             `json:"unapprovedExpenses"`
	UnapprovedTransfers  int             `json:"unapprovedTransfers"`
	UntransferredIncomes int             `json:"untransferredIncomes"`
	UntransferredAmount  decimal.Decimal `json:"untransferredAmount"`
	BankTotal            decimal.Decimal `json:"bankTotal"`
	CurrentCash          decimal.Decimal `json:"currentCash"`
	CashIsValid          bool            `json:"cashIsValid"`
	CanClose             bool            `json:"canClose"`
	ValidationMessages   []string        `json:"validationMessages"`
}

// ClosingResult reports a successful fiscal year close.
type ClosingResult struct {
	ClosedYear     int             `json:"closedYear"`
	NextYear       int             `json:"nextYear"`
	CarryoverValue decimal.Decimal `json:"carryoverValue"`
}
