package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	"github.com/assocamal/charity_mgmt_app/internal/models"
	"github.com/assocamal/charity_mgmt_app/internal/utils/mapping"
	"github.com/assocamal/charity_mgmt_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for transfer data.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, fiscal_year_id, from_account_id, to_account_id, amount, status,
		approved_by, approved_at, remarks,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTransfer(r row) (*domain.Transfer, error) {
	var m models.Transfer
	err := r.Scan(
		&m.TransferID,
		&m.FiscalYearID,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.Amount,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.Remarks,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transfer row", err)
	}
	transfer := mapping.ToDomainTransfer(m)
	return &transfer, nil
}

// FindTransferByID retrieves a transfer by its ID.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE transfer_id = $1;`
	return scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
}

// ListTransfersByFiscalYear retrieves a paginated list of transfers for a
// fiscal year using token-based pagination, newest first.
func (r *PgxTransferRepository) ListTransfersByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Transfer, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transferColumns + ` FROM transfers`
	filterClause := `WHERE fiscal_year_id = $1`
	orderByClause := `ORDER BY created_at DESC, transfer_id DESC`

	args := []interface{}{fiscalYearID}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		filterClause += ` AND (created_at, transfer_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}

	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transfers for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	modelTransfers := make([]models.Transfer, 0, fetchLimit)
	for rows.Next() {
		var m models.Transfer
		err := rows.Scan(
			&m.TransferID, &m.FiscalYearID, &m.FromAccountID, &m.ToAccountID,
			&m.Amount, &m.Status,
			&m.ApprovedBy, &m.ApprovedAt, &m.Remarks,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transfer row for fiscal year "+fiscalYearID, err)
		}
		modelTransfers = append(modelTransfers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transfer rows for fiscal year "+fiscalYearID, err)
	}

	var nextTokenVal *string
	results := modelTransfers
	if len(modelTransfers) > limit {
		last := modelTransfers[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransferID)
		nextTokenVal = &token
		results = modelTransfers[:limit]
	}

	return mapping.ToDomainTransferSlice(results), nextTokenVal, nil
}

// SaveTransfer persists a new draft transfer.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	m := mapping.ToModelTransfer(transfer)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transfers (transfer_id, fiscal_year_id, from_account_id, to_account_id, amount, status,
			approved_by, approved_at, remarks,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		m.TransferID, m.FiscalYearID, m.FromAccountID, m.ToAccountID,
		m.Amount, m.Status,
		m.ApprovedBy, m.ApprovedAt, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transfer "+m.TransferID, err)
	}
	return nil
}

// ApproveTransfer marks a draft transfer as approved and moves the money.
// Both account rows are locked in deterministic order to avoid deadlocks
// between concurrent approvals, and the source balance is re-checked under
// the lock before the debit.
func (r *PgxTransferRepository) ApproveTransfer(ctx context.Context, transfer domain.Transfer, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.RecordStatus
	err = tx.QueryRow(ctx, `SELECT status FROM transfers WHERE transfer_id = $1 FOR UPDATE;`, transfer.TransferID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transfer "+transfer.TransferID, err)
	}
	if status != models.Draft {
		return fmt.Errorf("transfer %s is not a draft: %w", transfer.TransferID, apperrors.ErrConflict)
	}

	// Lock the two accounts in ID order regardless of direction.
	first, second := transfer.FromAccountID, transfer.ToAccountID
	if second < first {
		first, second = second, first
	}
	balances := map[string]decimal.Decimal{}
	for _, accountID := range []string{first, second} {
		balance, err := lockBankAccountBalance(ctx, tx, accountID)
		if err != nil {
			return err
		}
		balances[accountID] = balance
	}

	if balances[transfer.FromAccountID].LessThan(transfer.Amount) {
		return fmt.Errorf("insufficient balance on account %s: %w", transfer.FromAccountID, apperrors.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		UPDATE transfers SET status = 'APPROVED', approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE transfer_id = $1;
	`, transfer.TransferID, userID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve transfer "+transfer.TransferID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE bank_accounts SET balance = balance - $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`, transfer.FromAccountID, transfer.Amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to debit account "+transfer.FromAccountID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE bank_accounts SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`, transfer.ToAccountID, transfer.Amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to credit account "+transfer.ToAccountID, err)
	}

	return r.Commit(ctx, tx)
}
