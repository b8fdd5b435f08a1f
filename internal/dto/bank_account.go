package dto

import (
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Label          string           `json:"label" binding:"required"`
	BankName       string           `json:"bankName" binding:"required"`
	AccountNumber  string           `json:"accountNumber" binding:"required"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"` // Optional, defaults to zero
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	Label         string          `json:"label"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: a.BankAccountID,
		Label:         a.Label,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
	}
}

// ToBankAccountResponses converts a slice of domain.BankAccount.
func ToBankAccountResponses(accounts []domain.BankAccount) []BankAccountResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToBankAccountResponse(&accounts[i])
	}
	return responses
}
