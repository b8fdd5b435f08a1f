package services

import (
	"context"
	"fmt"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	fiscalYearRepo portsrepo.FiscalYearReader
}

// NewExpenseService creates the expense record service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	fiscalYearRepo portsrepo.FiscalYearReader,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:    expenseRepo,
		fiscalYearRepo: fiscalYearRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense creates a new draft expense in an active fiscal year.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, req.FiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Fiscal year not found for expense", "fiscal_year_id", req.FiscalYearID)
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:      uuid.NewString(),
		FiscalYearID:   req.FiscalYearID,
		SubBudget:      req.SubBudget,
		Category:       req.Category,
		BeneficiaryRef: req.BeneficiaryRef,
		Amount:         req.Amount,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		Status:         domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", "fiscal_year_id", req.FiscalYearID)
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", "expense_id", expense.ExpenseID, "amount", expense.Amount.String())
	return &expense, nil
}

// GetExpenseByID retrieves an expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find expense", "expense_id", expenseID)
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses of a fiscal year, cursor-paginated.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListRecordsParams) (*dto.ListExpensesResponse, error) {
	expenses, nextToken, err := s.expenseRepo.ListExpensesByFiscalYear(ctx, params.FiscalYearID, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", "fiscal_year_id", params.FiscalYearID)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}, nil
}

// ApproveExpense transitions a draft expense to approved. Bank balances are
// untouched: expenses are tracked off the cash ledger.
func (s *expenseService) ApproveExpense(ctx context.Context, expenseID string, actorUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find expense for approval", "expense_id", expenseID)
		return nil, err
	}
	if expense.Status != domain.Draft {
		return nil, ErrAlreadyApproved
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, expense.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	now := time.Now()
	if err := s.expenseRepo.ApproveExpense(ctx, expenseID, actorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to approve expense", "expense_id", expenseID)
		return nil, err
	}

	expense.Status = domain.Approved
	expense.ApprovedBy = actorUserID
	expense.ApprovedAt = &now
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Expense approved", "expense_id", expenseID, "amount", expense.Amount.String())
	return expense, nil
}
