package services

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
)

// IncomeSvcFacade defines the income record operations.
type IncomeSvcFacade interface {
	// CreateIncome creates a new draft income in a fiscal year.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error)

	// GetIncomeByID retrieves an income.
	GetIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomes lists incomes of a fiscal year, cursor-paginated.
	ListIncomes(ctx context.Context, params dto.ListRecordsParams) (*dto.ListIncomesResponse, error)

	// ApproveIncome transitions a draft income to approved. Bank-wire incomes
	// credit their bank account at this point; cash/cheque incomes await the
	// separate bank deposit step.
	ApproveIncome(ctx context.Context, incomeID string, actorUserID string) (*domain.Income, error)
}

// ExpenseSvcFacade defines the expense record operations.
type ExpenseSvcFacade interface {
	// CreateExpense creates a new draft expense in a fiscal year.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses lists expenses of a fiscal year, cursor-paginated.
	ListExpenses(ctx context.Context, params dto.ListRecordsParams) (*dto.ListExpensesResponse, error)

	// ApproveExpense transitions a draft expense to approved.
	ApproveExpense(ctx context.Context, expenseID string, actorUserID string) (*domain.Expense, error)
}

// TransferSvcFacade defines the inter-account transfer operations.
type TransferSvcFacade interface {
	// CreateTransfer creates a new draft transfer between two bank accounts.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error)

	// GetTransferByID retrieves a transfer.
	GetTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfers lists transfers of a fiscal year, cursor-paginated.
	ListTransfers(ctx context.Context, params dto.ListRecordsParams) (*dto.ListTransfersResponse, error)

	// ApproveTransfer transitions a draft transfer to approved, moving the
	// money between the two accounts atomically.
	ApproveTransfer(ctx context.Context, transferID string, actorUserID string) (*domain.Transfer, error)
}
