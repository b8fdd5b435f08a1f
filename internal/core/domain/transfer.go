package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves money between two bank accounts. Approval debits the source
// and credits the destination atomically, and is rejected when the source
// balance is below the amount at approval time.
type Transfer struct {
	TransferID    string          `json:"transferID"` // Primary Key (UUID)
	FiscalYearID  string          `json:"fiscalYearID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"` // Must differ from FromAccountID
	Amount        decimal.Decimal `json:"amount"`      // Always positive
	Status        RecordStatus    `json:"status"`
	ApprovedBy    string          `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	AuditFields
}
