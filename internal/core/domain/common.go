package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// RecordStatus is the approval state shared by incomes, expenses and transfers.
type RecordStatus string

const (
	Draft    RecordStatus = "DRAFT"
	Approved RecordStatus = "APPROVED"
)

// PaymentMethod describes how money physically moved for an income or expense.
type PaymentMethod string

const (
	Cash     PaymentMethod = "CASH"
	Cheque   PaymentMethod = "CHEQUE"
	BankWire PaymentMethod = "BANK_WIRE"
)

// RequiresBankTransfer reports whether an approved income with this payment
// method still has to be deposited into a bank account before it counts as banked.
func (m PaymentMethod) RequiresBankTransfer() bool {
	return m == Cash || m == Cheque
}
