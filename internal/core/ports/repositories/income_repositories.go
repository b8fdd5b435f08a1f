package repositories

import (
	"context"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
)

// IncomeReader defines read operations for income data
type IncomeReader interface {
	// FindIncomeByID retrieves a specific income by its unique identifier.
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// ListIncomesByFiscalYear retrieves a cursor-paginated list of incomes
	// for a fiscal year, newest first.
	ListIncomesByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Income, *string, error)

	// ListUntransferredIncomes retrieves approved cash/cheque incomes of the
	// fiscal year that have not been deposited into a bank account yet.
	ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income data
type IncomeWriter interface {
	// SaveIncome persists a new draft income.
	SaveIncome(ctx context.Context, income domain.Income) error

	// ApproveIncome marks a draft income as approved. For bank-wire incomes
	// the designated bank account is credited in the same transaction, with
	// the account row locked. A no-longer-draft income aborts the operation.
	ApproveIncome(ctx context.Context, income domain.Income, userID string, now time.Time) error

	// TransferIncomeToBank deposits an approved cash/cheque income into a
	// bank account: sets bank_account_id, transferred_at and remarks on the
	// income and credits the account, all in one transaction. An income that
	// is already transferred aborts the operation.
	TransferIncomeToBank(ctx context.Context, incomeID string, bankAccountID string, remarks string, userID string, now time.Time) (*domain.Income, error)
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
