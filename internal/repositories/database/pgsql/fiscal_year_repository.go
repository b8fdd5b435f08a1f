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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxFiscalYearRepository struct {
	BaseRepository
}

// newPgxFiscalYearRepository creates a new repository for fiscal year and budget data.
func newPgxFiscalYearRepository(pool *pgxpool.Pool) portsrepo.FiscalYearRepositoryFacade {
	return &PgxFiscalYearRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FiscalYearRepositoryFacade = (*PgxFiscalYearRepository)(nil)

const fiscalYearColumns = `fiscal_year_id, year, is_active, created_at, created_by, last_updated_at, last_updated_by`

// row is satisfied by both pgx.Row and the single-row use of pgx.Rows.
type row interface {
	Scan(dest ...any) error
}

func scanFiscalYear(r row) (*domain.FiscalYear, error) {
	var m models.FiscalYear
	err := r.Scan(
		&m.FiscalYearID,
		&m.Year,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan fiscal year row", err)
	}
	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

// FindFiscalYearByID retrieves a fiscal year by its ID.
func (r *PgxFiscalYearRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1;`
	return scanFiscalYear(r.Pool.QueryRow(ctx, query, fiscalYearID))
}

// FindFiscalYearByYear retrieves a fiscal year by its calendar year.
func (r *PgxFiscalYearRepository) FindFiscalYearByYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE year = $1;`
	return scanFiscalYear(r.Pool.QueryRow(ctx, query, year))
}

// FindActiveFiscalYear retrieves the currently active fiscal year, if any.
func (r *PgxFiscalYearRepository) FindActiveFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE is_active;`
	return scanFiscalYear(r.Pool.QueryRow(ctx, query))
}

// CountFiscalYears returns the number of fiscal years.
func (r *PgxFiscalYearRepository) CountFiscalYears(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fiscal_years;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count fiscal years", err)
	}
	return count, nil
}

// FindBudgetByFiscalYearID retrieves the budget owned by a fiscal year.
func (r *PgxFiscalYearRepository) FindBudgetByFiscalYearID(ctx context.Context, fiscalYearID string) (*domain.Budget, error) {
	query := `
		SELECT budget_id, fiscal_year_id, current_amount, carryover_prev_year, carryover_next_year,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM budgets
		WHERE fiscal_year_id = $1;
	`
	var m models.Budget
	err := r.Pool.QueryRow(ctx, query, fiscalYearID).Scan(
		&m.BudgetID,
		&m.FiscalYearID,
		&m.CurrentAmount,
		&m.CarryoverPrevYear,
		&m.CarryoverNextYear,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget for fiscal year "+fiscalYearID, err)
	}
	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

// ListFiscalYearTotals retrieves all fiscal years with their budget and the
// approved income/expense sums, newest year first.
func (r *PgxFiscalYearRepository) ListFiscalYearTotals(ctx context.Context) ([]domain.FiscalYearTotals, error) {
	query := `
		SELECT fy.fiscal_year_id, fy.year, fy.is_active,
		       fy.created_at, fy.created_by, fy.last_updated_at, fy.last_updated_by,
		       b.budget_id, b.current_amount, b.carryover_prev_year, b.carryover_next_year,
		       b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
		       COALESCE(i.total, 0) AS total_incomes,
		       COALESCE(e.total, 0) AS total_expenses
		FROM fiscal_years fy
		JOIN budgets b ON b.fiscal_year_id = fy.fiscal_year_id
		LEFT JOIN (
			SELECT fiscal_year_id, SUM(amount) AS total FROM incomes WHERE status = 'APPROVED' GROUP BY fiscal_year_id
		) i ON i.fiscal_year_id = fy.fiscal_year_id
		LEFT JOIN (
			SELECT fiscal_year_id, SUM(amount) AS total FROM expenses WHERE status = 'APPROVED' GROUP BY fiscal_year_id
		) e ON e.fiscal_year_id = fy.fiscal_year_id
		ORDER BY fy.year DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal year totals", err)
	}
	defer rows.Close()

	totals := []domain.FiscalYearTotals{}
	for rows.Next() {
		var mfy models.FiscalYear
		var mb models.Budget
		var totalIncomes, totalExpenses decimal.Decimal
		err := rows.Scan(
			&mfy.FiscalYearID,
			&mfy.Year,
			&mfy.IsActive,
			&mfy.CreatedAt,
			&mfy.CreatedBy,
			&mfy.LastUpdatedAt,
			&mfy.LastUpdatedBy,
			&mb.BudgetID,
			&mb.CurrentAmount,
			&mb.CarryoverPrevYear,
			&mb.CarryoverNextYear,
			&mb.CreatedAt,
			&mb.CreatedBy,
			&mb.LastUpdatedAt,
			&mb.LastUpdatedBy,
			&totalIncomes,
			&totalExpenses,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal year totals row", err)
		}
		mb.FiscalYearID = mfy.FiscalYearID
		budget := mapping.ToDomainBudget(mb)
		totals = append(totals, domain.FiscalYearTotals{
			FiscalYear:     mapping.ToDomainFiscalYear(mfy),
			Budget:         budget,
			TotalIncomes:   totalIncomes,
			TotalExpenses:  totalExpenses,
			TotalAvailable: budget.TotalAvailable(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fiscal year totals rows", err)
	}
	return totals, nil
}

// SaveFiscalYear persists a new fiscal year together with its budget in one transaction.
func (r *PgxFiscalYearRepository) SaveFiscalYear(ctx context.Context, fiscalYear domain.FiscalYear, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	mfy := mapping.ToModelFiscalYear(fiscalYear)
	_, err = tx.Exec(ctx, `
		INSERT INTO fiscal_years (fiscal_year_id, year, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		mfy.FiscalYearID, mfy.Year, mfy.IsActive,
		mfy.CreatedAt, mfy.CreatedBy, mfy.LastUpdatedAt, mfy.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: fiscal year %d already exists", apperrors.ErrDuplicate, mfy.Year)
		}
		return apperrors.NewAppError(500, "failed to insert fiscal year "+mfy.FiscalYearID, err)
	}

	mb := mapping.ToModelBudget(budget)
	_, err = tx.Exec(ctx, `
		INSERT INTO budgets (budget_id, fiscal_year_id, current_amount, carryover_prev_year, carryover_next_year, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		mb.BudgetID, mb.FiscalYearID, mb.CurrentAmount, mb.CarryoverPrevYear, mb.CarryoverNextYear,
		mb.CreatedAt, mb.CreatedBy, mb.LastUpdatedAt, mb.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget for fiscal year "+mfy.FiscalYearID, err)
	}

	return r.Commit(ctx, tx)
}

// closingAggregatesQuerier abstracts pool vs transaction for the aggregate reads.
type closingAggregatesQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func readClosingAggregates(ctx context.Context, q closingAggregatesQuerier, fiscalYearID string) (*domain.ClosingAggregates, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM incomes WHERE fiscal_year_id = $1 AND status = 'DRAFT'),
			(SELECT COUNT(*) FROM expenses WHERE fiscal_year_id = $1 AND status = 'DRAFT'),
			(SELECT COUNT(*) FROM transfers WHERE fiscal_year_id = $1 AND status = 'DRAFT'),
			(SELECT COUNT(*) FROM incomes WHERE fiscal_year_id = $1 AND status = 'APPROVED'
				AND payment_method IN ('CASH', 'CHEQUE') AND transferred_at IS NULL),
			(SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE fiscal_year_id = $1 AND status = 'APPROVED'
				AND payment_method IN ('CASH', 'CHEQUE') AND transferred_at IS NULL),
			(SELECT COALESCE(SUM(balance), 0) FROM bank_accounts);
	`
	var agg domain.ClosingAggregates
	err := q.QueryRow(ctx, query, fiscalYearID).Scan(
		&agg.DraftIncomes,
		&agg.DraftExpenses,
		&agg.DraftTransfers,
		&agg.UntransferredCount,
		&agg.UntransferredAmount,
		&agg.BankTotal,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read closing aggregates for fiscal year "+fiscalYearID, err)
	}

	rows, err := q.Query(ctx, `SELECT label FROM bank_accounts WHERE balance < 0 ORDER BY label;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query overdrawn accounts", err)
	}
	defer rows.Close()
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan overdrawn account row", err)
		}
		agg.OverdrawnAccounts = append(agg.OverdrawnAccounts, label)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating overdrawn account rows", err)
	}
	return &agg, nil
}

// GetClosingAggregates reads the per-year closing figures in one pass.
func (r *PgxFiscalYearRepository) GetClosingAggregates(ctx context.Context, fiscalYearID string) (*domain.ClosingAggregates, error) {
	return readClosingAggregates(ctx, r.Pool, fiscalYearID)
}

// CloseAndRollForward performs the close inside a single transaction. The
// fiscal year row is locked first, then the closability conditions are
// re-checked against in-transaction aggregates before the year is
// deactivated and the carryover is rolled into the successor year.
func (r *PgxFiscalYearRepository) CloseAndRollForward(ctx context.Context, fiscalYear domain.FiscalYear, userID string) (*domain.ClosingResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var isActive bool
	err = tx.QueryRow(ctx, `SELECT is_active FROM fiscal_years WHERE fiscal_year_id = $1 FOR UPDATE;`, fiscalYear.FiscalYearID).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock fiscal year "+fiscalYear.FiscalYearID, err)
	}
	if !isActive {
		return nil, fmt.Errorf("fiscal year %d is no longer active: %w", fiscalYear.Year, apperrors.ErrConflict)
	}

	// Re-check under the lock: a concurrent draft or deposit may have slipped
	// in between the service-level validation and this transaction.
	agg, err := readClosingAggregates(ctx, tx, fiscalYear.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if agg.DraftIncomes+agg.DraftExpenses+agg.DraftTransfers > 0 {
		return nil, fmt.Errorf("fiscal year %d has pending approvals: %w", fiscalYear.Year, apperrors.ErrConflict)
	}
	if agg.UntransferredCount > 0 {
		return nil, fmt.Errorf("fiscal year %d has incomes awaiting bank transfer: %w", fiscalYear.Year, apperrors.ErrConflict)
	}
	if len(agg.OverdrawnAccounts) > 0 || agg.BankTotal.IsNegative() {
		return nil, fmt.Errorf("cash position of fiscal year %d is invalid: %w", fiscalYear.Year, apperrors.ErrConflict)
	}

	// With the cash box empty the carryover is exactly the banked total.
	carryover := agg.BankTotal
	now := time.Now()

	_, err = tx.Exec(ctx, `
		UPDATE fiscal_years SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1;
	`, fiscalYear.FiscalYearID, now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to deactivate fiscal year "+fiscalYear.FiscalYearID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE budgets SET carryover_next_year = $2, last_updated_at = $3, last_updated_by = $4
		WHERE fiscal_year_id = $1;
	`, fiscalYear.FiscalYearID, carryover, now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to stamp carryover on budget for fiscal year "+fiscalYear.FiscalYearID, err)
	}

	nextYear := fiscalYear.Year + 1
	var successorID string
	err = tx.QueryRow(ctx, `SELECT fiscal_year_id FROM fiscal_years WHERE year = $1 FOR UPDATE;`, nextYear).Scan(&successorID)
	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE fiscal_years SET is_active = TRUE, last_updated_at = $2, last_updated_by = $3
			WHERE fiscal_year_id = $1;
		`, successorID, now, userID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to activate successor fiscal year "+successorID, err)
		}
		_, err = tx.Exec(ctx, `
			UPDATE budgets SET carryover_prev_year = $2, last_updated_at = $3, last_updated_by = $4
			WHERE fiscal_year_id = $1;
		`, successorID, carryover, now, userID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to set carryover on successor budget "+successorID, err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		successorID = uuid.NewString()
		_, err = tx.Exec(ctx, `
			INSERT INTO fiscal_years (fiscal_year_id, year, is_active, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, TRUE, $3, $4, $3, $4);
		`, successorID, nextYear, now, userID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to create successor fiscal year", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO budgets (budget_id, fiscal_year_id, current_amount, carryover_prev_year, carryover_next_year, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, 0, $3, 0, $4, $5, $4, $5);
		`, uuid.NewString(), successorID, carryover, now, userID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to create successor budget", err)
		}
	default:
		return nil, apperrors.NewAppError(500, "failed to look up successor fiscal year", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.ClosingResult{
		ClosedYear:     fiscalYear.Year,
		NextYear:       nextYear,
		CarryoverValue: carryover,
	}, nil
}
