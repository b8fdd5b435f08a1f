package repositories

import (
	"context"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
)

// TransferReader defines read operations for transfer data
type TransferReader interface {
	// FindTransferByID retrieves a specific transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfersByFiscalYear retrieves a cursor-paginated list of transfers
	// for a fiscal year, newest first.
	ListTransfersByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Transfer, *string, error)
}

// TransferWriter defines write operations for transfer data
type TransferWriter interface {
	// SaveTransfer persists a new draft transfer.
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error

	// ApproveTransfer marks a draft transfer as approved and moves the money:
	// both account rows are locked in deterministic order, the source balance
	// is re-checked against the amount, then the source is debited and the
	// destination credited in the same transaction.
	ApproveTransfer(ctx context.Context, transfer domain.Transfer, userID string, now time.Time) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
