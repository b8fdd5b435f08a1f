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
)

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income data.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const incomeColumns = `income_id, fiscal_year_id, sub_budget, category, donor_ref, amount, payment_method, status,
		approved_by, approved_at, bank_account_id, transferred_at, remarks,
		created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(r row) (*domain.Income, error) {
	var m models.Income
	err := r.Scan(
		&m.IncomeID,
		&m.FiscalYearID,
		&m.SubBudget,
		&m.Category,
		&m.DonorRef,
		&m.Amount,
		&m.PaymentMethod,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.BankAccountID,
		&m.TransferredAt,
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
		return nil, apperrors.NewAppError(500, "failed to scan income row", err)
	}
	income := mapping.ToDomainIncome(m)
	return &income, nil
}

// FindIncomeByID retrieves an income by its ID.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = $1;`
	return scanIncome(r.Pool.QueryRow(ctx, query, incomeID))
}

// ListIncomesByFiscalYear retrieves a paginated list of incomes for a fiscal
// year using token-based pagination, newest first.
func (r *PgxIncomeRepository) ListIncomesByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Income, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + incomeColumns + ` FROM incomes`
	filterClause := `WHERE fiscal_year_id = $1`
	orderByClause := `ORDER BY created_at DESC, income_id DESC`

	args := []interface{}{fiscalYearID}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		filterClause += ` AND (created_at, income_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}

	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query incomes for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	modelIncomes := make([]models.Income, 0, fetchLimit)
	for rows.Next() {
		var m models.Income
		err := rows.Scan(
			&m.IncomeID, &m.FiscalYearID, &m.SubBudget, &m.Category, &m.DonorRef,
			&m.Amount, &m.PaymentMethod, &m.Status,
			&m.ApprovedBy, &m.ApprovedAt, &m.BankAccountID, &m.TransferredAt, &m.Remarks,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan income row for fiscal year "+fiscalYearID, err)
		}
		modelIncomes = append(modelIncomes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating income rows for fiscal year "+fiscalYearID, err)
	}

	var nextTokenVal *string
	results := modelIncomes
	if len(modelIncomes) > limit {
		last := modelIncomes[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.IncomeID)
		nextTokenVal = &token
		results = modelIncomes[:limit]
	}

	return mapping.ToDomainIncomeSlice(results), nextTokenVal, nil
}

// ListUntransferredIncomes retrieves approved cash/cheque incomes of the
// fiscal year that have not been deposited into a bank account yet.
func (r *PgxIncomeRepository) ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes
		WHERE fiscal_year_id = $1 AND status = 'APPROVED'
		  AND payment_method IN ('CASH', 'CHEQUE') AND transferred_at IS NULL
		ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, fiscalYearID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query untransferred incomes for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	modelIncomes := []models.Income{}
	for rows.Next() {
		var m models.Income
		err := rows.Scan(
			&m.IncomeID, &m.FiscalYearID, &m.SubBudget, &m.Category, &m.DonorRef,
			&m.Amount, &m.PaymentMethod, &m.Status,
			&m.ApprovedBy, &m.ApprovedAt, &m.BankAccountID, &m.TransferredAt, &m.Remarks,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan untransferred income row", err)
		}
		modelIncomes = append(modelIncomes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating untransferred income rows", err)
	}
	return mapping.ToDomainIncomeSlice(modelIncomes), nil
}

// SaveIncome persists a new draft income.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO incomes (income_id, fiscal_year_id, sub_budget, category, donor_ref, amount, payment_method, status,
			approved_by, approved_at, bank_account_id, transferred_at, remarks,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`,
		m.IncomeID, m.FiscalYearID, m.SubBudget, m.Category, m.DonorRef,
		m.Amount, m.PaymentMethod, m.Status,
		m.ApprovedBy, m.ApprovedAt, m.BankAccountID, m.TransferredAt, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert income "+m.IncomeID, err)
	}
	return nil
}

// ApproveIncome marks a draft income as approved. Bank-wire incomes credit
// their bank account in the same transaction with the account row locked.
func (r *PgxIncomeRepository) ApproveIncome(ctx context.Context, income domain.Income, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.RecordStatus
	err = tx.QueryRow(ctx, `SELECT status FROM incomes WHERE income_id = $1 FOR UPDATE;`, income.IncomeID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock income "+income.IncomeID, err)
	}
	if status != models.Draft {
		return fmt.Errorf("income %s is not a draft: %w", income.IncomeID, apperrors.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		UPDATE incomes SET status = 'APPROVED', approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE income_id = $1;
	`, income.IncomeID, userID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve income "+income.IncomeID, err)
	}

	if income.PaymentMethod == domain.BankWire {
		if income.BankAccountID == nil {
			return fmt.Errorf("bank wire income %s has no bank account: %w", income.IncomeID, apperrors.ErrConflict)
		}
		if err := creditBankAccount(ctx, tx, *income.BankAccountID, income.Amount, userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// TransferIncomeToBank deposits an approved cash/cheque income into a bank
// account and credits the account, all in one transaction.
func (r *PgxIncomeRepository) TransferIncomeToBank(ctx context.Context, incomeID string, bankAccountID string, remarks string, userID string, now time.Time) (*domain.Income, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + incomeColumns + ` FROM incomes WHERE income_id = $1 FOR UPDATE;`
	income, err := scanIncome(tx.QueryRow(ctx, lockQuery, incomeID))
	if err != nil {
		return nil, err
	}
	if income.Status != domain.Approved {
		return nil, fmt.Errorf("income %s is not approved: %w", incomeID, apperrors.ErrConflict)
	}
	if !income.PaymentMethod.RequiresBankTransfer() {
		return nil, fmt.Errorf("income %s does not require a bank transfer: %w", incomeID, apperrors.ErrConflict)
	}
	if income.IsTransferred() {
		return nil, fmt.Errorf("income %s is already transferred: %w", incomeID, apperrors.ErrConflict)
	}

	if remarks == "" {
		remarks = income.Remarks
	}
	_, err = tx.Exec(ctx, `
		UPDATE incomes SET bank_account_id = $2, transferred_at = $3, remarks = $4, last_updated_at = $3, last_updated_by = $5
		WHERE income_id = $1;
	`, incomeID, bankAccountID, now, remarks, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark income "+incomeID+" transferred", err)
	}

	if err := creditBankAccount(ctx, tx, bankAccountID, income.Amount, userID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	income.BankAccountID = &bankAccountID
	income.TransferredAt = &now
	income.Remarks = remarks
	income.LastUpdatedAt = now
	income.LastUpdatedBy = userID
	return income, nil
}
