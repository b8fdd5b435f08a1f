package repositories

import (
	"context"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
)

// BankAccountReader defines read operations for bank account data
type BankAccountReader interface {
	// FindBankAccountByID retrieves a specific bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)

	// ListBankAccounts retrieves all bank accounts, oldest first.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account.
	// Balances are never set directly afterwards; only approval and deposit
	// operations mutate them.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
}

// BankAccountRepositoryFacade combines all bank-account-related repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
