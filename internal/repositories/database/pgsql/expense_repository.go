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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, fiscal_year_id, sub_budget, category, beneficiary_ref, amount, payment_method, status,
		approved_by, approved_at,
		created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(r row) (*domain.Expense, error) {
	var m models.Expense
	err := r.Scan(
		&m.ExpenseID,
		&m.FiscalYearID,
		&m.SubBudget,
		&m.Category,
		&m.BeneficiaryRef,
		&m.Amount,
		&m.PaymentMethod,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	return scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
}

// ListExpensesByFiscalYear retrieves a paginated list of expenses for a fiscal
// year using token-based pagination, newest first.
func (r *PgxExpenseRepository) ListExpensesByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses`
	filterClause := `WHERE fiscal_year_id = $1`
	orderByClause := `ORDER BY created_at DESC, expense_id DESC`

	args := []interface{}{fiscalYearID}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		filterClause += ` AND (created_at, expense_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}

	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expenses for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	modelExpenses := make([]models.Expense, 0, fetchLimit)
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID, &m.FiscalYearID, &m.SubBudget, &m.Category, &m.BeneficiaryRef,
			&m.Amount, &m.PaymentMethod, &m.Status,
			&m.ApprovedBy, &m.ApprovedAt,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row for fiscal year "+fiscalYearID, err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows for fiscal year "+fiscalYearID, err)
	}

	var nextTokenVal *string
	results := modelExpenses
	if len(modelExpenses) > limit {
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ExpenseID)
		nextTokenVal = &token
		results = modelExpenses[:limit]
	}

	return mapping.ToDomainExpenseSlice(results), nextTokenVal, nil
}

// SaveExpense persists a new draft expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO expenses (expense_id, fiscal_year_id, sub_budget, category, beneficiary_ref, amount, payment_method, status,
			approved_by, approved_at,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`,
		m.ExpenseID, m.FiscalYearID, m.SubBudget, m.Category, m.BeneficiaryRef,
		m.Amount, m.PaymentMethod, m.Status,
		m.ApprovedBy, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}
	return nil
}

// ApproveExpense marks a draft expense as approved. Bank balances stay
// untouched; expenses are tracked off the cash ledger.
func (r *PgxExpenseRepository) ApproveExpense(ctx context.Context, expenseID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.RecordStatus
	err = tx.QueryRow(ctx, `SELECT status FROM expenses WHERE expense_id = $1 FOR UPDATE;`, expenseID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock expense "+expenseID, err)
	}
	if status != models.Draft {
		return fmt.Errorf("expense %s is not a draft: %w", expenseID, apperrors.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		UPDATE expenses SET status = 'APPROVED', approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE expense_id = $1;
	`, expenseID, userID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve expense "+expenseID, err)
	}

	return r.Commit(ctx, tx)
}
