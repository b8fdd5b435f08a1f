package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money received by the association within a fiscal year.
// Lifecycle: DRAFT -> APPROVED (one-way). Approved cash/cheque incomes
// additionally go through a one-time "transferred to bank" step that sets
// BankAccountID and TransferredAt and credits the target account.
type Income struct {
	IncomeID      string          `json:"incomeID"` // Primary Key (UUID)
	FiscalYearID  string          `json:"fiscalYearID"`
	SubBudget     string          `json:"subBudget"` // Allocation bucket, e.g. "Education"
	Category      string          `json:"category"`
	DonorRef      string          `json:"donorRef"` // Opaque reference to the donor record
	Amount        decimal.Decimal `json:"amount"`   // Always positive
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        RecordStatus    `json:"status"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	BankAccountID *string         `json:"bankAccountID,omitempty"` // Set at approval (bank wire) or deposit time
	TransferredAt *time.Time      `json:"transferredAt,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	AuditFields
}

// IsTransferred reports whether a cash/cheque income has already been deposited.
func (i Income) IsTransferred() bool {
	return i.TransferredAt != nil
}

// Expense is money spent within a fiscal year. Approval is one-way and does
// not touch bank balances: expenses are tracked off the cash ledger.
type Expense struct {
	ExpenseID      string          `json:"expenseID"` // Primary Key (UUID)
	FiscalYearID   string          `json:"fiscalYearID"`
	SubBudget      string          `json:"subBudget"`
	Category       string          `json:"category"`
	BeneficiaryRef string          `json:"beneficiaryRef"` // Opaque reference to the beneficiary record
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         RecordStatus    `json:"status"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	AuditFields
}
