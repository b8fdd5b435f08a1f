package services

import (
	"context"
	"fmt"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bankAccountService implements the BankAccountSvcFacade interface
type bankAccountService struct {
	BaseService
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
}

// NewBankAccountService creates the bank account service.
func NewBankAccountService(bankAccountRepo portsrepo.BankAccountRepositoryFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{bankAccountRepo: bankAccountRepo}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

// CreateBankAccount registers a new bank account with an optional opening balance.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	openingBalance := decimal.Zero
	if req.OpeningBalance != nil {
		if req.OpeningBalance.IsNegative() {
			return nil, fmt.Errorf("opening balance must not be negative: %w", apperrors.ErrValidation)
		}
		openingBalance = *req.OpeningBalance
	}

	now := time.Now()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		Label:         req.Label,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Balance:       openingBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bankAccountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", "label", req.Label)
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	s.LogInfo(ctx, "Bank account created", "bank_account_id", account.BankAccountID, "label", account.Label)
	return &account, nil
}

// GetBankAccountByID retrieves a bank account.
func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find bank account", "bank_account_id", bankAccountID)
		return nil, err
	}
	return account, nil
}

// ListBankAccounts lists all bank accounts.
func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := s.bankAccountRepo.ListBankAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}
