package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	"github.com/assocamal/charity_mgmt_app/internal/models"
	"github.com/assocamal/charity_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `bank_account_id, label, bank_name, account_number, balance,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBankAccount(r row) (*domain.BankAccount, error) {
	var m models.BankAccount
	err := r.Scan(
		&m.BankAccountID,
		&m.Label,
		&m.BankName,
		&m.AccountNumber,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan bank account row", err)
	}
	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`
	return scanBankAccount(r.Pool.QueryRow(ctx, query, bankAccountID))
}

// ListBankAccounts retrieves all bank accounts, oldest first.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank accounts", err)
	}
	defer rows.Close()

	modelAccounts := []models.BankAccount{}
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.BankAccountID, &m.Label, &m.BankName, &m.AccountNumber, &m.Balance,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account row", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank account rows", err)
	}
	return mapping.ToDomainBankAccountSlice(modelAccounts), nil
}

// SaveBankAccount persists a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO bank_accounts (bank_account_id, label, bank_name, account_number, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.BankAccountID, m.Label, m.BankName, m.AccountNumber, m.Balance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: bank account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return apperrors.NewAppError(500, "failed to insert bank account "+m.BankAccountID, err)
	}
	return nil
}

// lockBankAccountBalance locks the account row and returns its current balance.
func lockBankAccountBalance(ctx context.Context, tx pgx.Tx, bankAccountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT balance FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`, bankAccountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("bank account %s: %w", bankAccountID, apperrors.ErrNotFound)
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to lock bank account "+bankAccountID, err)
	}
	return balance, nil
}

// creditBankAccount locks the account row and adds amount to its balance.
// Must be called within a transaction.
func creditBankAccount(ctx context.Context, tx pgx.Tx, bankAccountID string, amount decimal.Decimal, userID string, now time.Time) error {
	if _, err := lockBankAccountBalance(ctx, tx, bankAccountID); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		UPDATE bank_accounts SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`, bankAccountID, amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to credit bank account "+bankAccountID, err)
	}
	return nil
}
