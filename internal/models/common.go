package models

import "time"

// AuditFields holds the standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// RecordStatus mirrors domain.RecordStatus at the persistence layer.
type RecordStatus string

const (
	Draft    RecordStatus = "DRAFT"
	Approved RecordStatus = "APPROVED"
)

// PaymentMethod mirrors domain.PaymentMethod at the persistence layer.
type PaymentMethod string

const (
	Cash     PaymentMethod = "CASH"
	Cheque   PaymentMethod = "CHEQUE"
	BankWire PaymentMethod = "BANK_WIRE"
)
