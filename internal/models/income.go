package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the database representation of an income row.
// BankAccountID and TransferredAt are nullable until the deposit step.
type Income struct {
	IncomeID      string          `db:"income_id"`
	FiscalYearID  string          `db:"fiscal_year_id"`
	SubBudget     string          `db:"sub_budget"`
	Category      string          `db:"category"`
	DonorRef      string          `db:"donor_ref"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Status        RecordStatus    `db:"status"`
	ApprovedBy    string          `db:"approved_by"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	BankAccountID *string         `db:"bank_account_id"`
	TransferredAt *time.Time      `db:"transferred_at"`
	Remarks       string          `db:"remarks"`
	AuditFields
}

// Expense is the database representation of an expense row.
type Expense struct {
	ExpenseID      string          `db:"expense_id"`
	FiscalYearID   string          `db:"fiscal_year_id"`
	SubBudget      string          `db:"sub_budget"`
	Category       string          `db:"category"`
	BeneficiaryRef string          `db:"beneficiary_ref"`
	Amount         decimal.Decimal `db:"amount"`
	PaymentMethod  PaymentMethod   `db:"payment_method"`
	Status         RecordStatus    `db:"status"`
	ApprovedBy     string          `db:"approved_by"`
	ApprovedAt     *time.Time      `db:"approved_at"`
	AuditFields
}

// Transfer is the database representation of a transfer row.
type Transfer struct {
	TransferID    string          `db:"transfer_id"`
	FiscalYearID  string          `db:"fiscal_year_id"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Status        RecordStatus    `db:"status"`
	ApprovedBy    string          `db:"approved_by"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	Remarks       string          `db:"remarks"`
	AuditFields
}
