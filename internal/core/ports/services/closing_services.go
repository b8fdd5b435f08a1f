package services

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
)

// ClosingReaderSvc defines the read-only closing computations.
type ClosingReaderSvc interface {
	// GetClosingStatus returns the lightweight closability status of a fiscal year.
	GetClosingStatus(ctx context.Context, fiscalYearID string) (*domain.ClosingStatus, error)

	// GetClosingSummary computes the full closing summary of a fiscal year.
	// Pure computation from persisted state; no side effects.
	GetClosingSummary(ctx context.Context, fiscalYearID string) (*domain.ClosingSummary, error)

	// ListUntransferredIncomes lists approved cash/cheque incomes of the year
	// that still have to be deposited into a bank account.
	ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error)
}

// ClosingWriterSvc defines the state transitions of the closing workflow.
type ClosingWriterSvc interface {
	// CloseFiscalYear validates and performs the irreversible close of a
	// fiscal year, rolling the carryover forward into the successor year.
	CloseFiscalYear(ctx context.Context, fiscalYearID string, actorUserID string) (*domain.ClosingResult, error)

	// TransferIncomeToBank deposits an approved cash/cheque income into a
	// bank account. One-way, one-time per income.
	TransferIncomeToBank(ctx context.Context, incomeID string, req dto.TransferIncomeToBankRequest, actorUserID string) (*domain.Income, error)
}

// FiscalYearClosingSvcFacade combines the closing workflow interfaces.
type FiscalYearClosingSvcFacade interface {
	ClosingReaderSvc
	ClosingWriterSvc
}

// ClosePolicy decides whether an actor may close a fiscal year. The default
// implementation authorizes everyone; a role-based policy can be injected
// without touching the closing service.
type ClosePolicy interface {
	CanCloseFiscalYear(ctx context.Context, actorUserID string, fiscalYear domain.FiscalYear) bool
}
