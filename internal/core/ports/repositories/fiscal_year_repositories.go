package repositories

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
)

// FiscalYearReader defines read operations for fiscal year data
type FiscalYearReader interface {
	// FindFiscalYearByID retrieves a specific fiscal year by its unique identifier.
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)

	// FindFiscalYearByYear retrieves a fiscal year by its calendar year.
	FindFiscalYearByYear(ctx context.Context, year int) (*domain.FiscalYear, error)

	// FindActiveFiscalYear retrieves the currently active fiscal year, if any.
	FindActiveFiscalYear(ctx context.Context) (*domain.FiscalYear, error)

	// ListFiscalYearTotals retrieves all fiscal years with their budget and
	// approved income/expense sums, newest year first.
	ListFiscalYearTotals(ctx context.Context) ([]domain.FiscalYearTotals, error)

	// FindBudgetByFiscalYearID retrieves the budget owned by a fiscal year.
	FindBudgetByFiscalYearID(ctx context.Context, fiscalYearID string) (*domain.Budget, error)

	// CountFiscalYears returns the number of fiscal years.
	CountFiscalYears(ctx context.Context) (int, error)
}

// FiscalYearWriter defines write operations for fiscal year data
type FiscalYearWriter interface {
	// SaveFiscalYear persists a new fiscal year together with its budget.
	SaveFiscalYear(ctx context.Context, fiscalYear domain.FiscalYear, budget domain.Budget) error
}

// ClosingSupport defines the aggregate reads and the transactional close
// operation the closing service is built on.
type ClosingSupport interface {
	// GetClosingAggregates reads the per-year closing figures in one pass:
	// draft counts, untransferred cash/cheque incomes and bank balances.
	GetClosingAggregates(ctx context.Context, fiscalYearID string) (*domain.ClosingAggregates, error)

	// CloseAndRollForward performs the close inside a single transaction:
	// it locks the fiscal year row, re-checks that it is still active and
	// closable, recomputes the carryover, deactivates the year, stamps
	// carryover_next_year on its budget and creates or reactivates the
	// successor year with carryover_prev_year set. Any failure rolls the
	// whole transaction back.
	CloseAndRollForward(ctx context.Context, fiscalYear domain.FiscalYear, userID string) (*domain.ClosingResult, error)
}

// FiscalYearRepositoryFacade combines all fiscal-year-related repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
	ClosingSupport
}
