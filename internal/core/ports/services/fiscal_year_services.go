package services

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
)

// FiscalYearSvcFacade defines the fiscal year management operations.
type FiscalYearSvcFacade interface {
	// CreateFiscalYear creates a new fiscal year with its budget. The first
	// fiscal year ever created becomes the active one.
	CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error)

	// GetFiscalYearByID retrieves a fiscal year.
	GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)

	// ListFiscalYears lists all fiscal years with computed totals, newest first.
	ListFiscalYears(ctx context.Context) ([]domain.FiscalYearTotals, error)
}

// BankAccountSvcFacade defines the bank account operations.
type BankAccountSvcFacade interface {
	// CreateBankAccount registers a new bank account with an optional opening balance.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error)

	// GetBankAccountByID retrieves a bank account.
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts lists all bank accounts.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}
