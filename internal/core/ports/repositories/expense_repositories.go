package repositories

import (
	"context"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByFiscalYear retrieves a cursor-paginated list of expenses
	// for a fiscal year, newest first.
	ListExpensesByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new draft expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// ApproveExpense marks a draft expense as approved. Expense approval does
	// not touch bank balances: expenses are tracked off the cash ledger.
	ApproveExpense(ctx context.Context, expenseID string, userID string, now time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
