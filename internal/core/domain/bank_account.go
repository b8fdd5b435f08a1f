package domain

import "github.com/shopspring/decimal"

// BankAccount holds a running balance. The balance is mutated only by approved
// bank-wire incomes, approved transfers and income bank deposits, always inside
// a repository transaction that locks the account row.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"` // Primary Key (UUID)
	Label         string          `json:"label"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
