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

const defaultListLimit = 25
const maxListLimit = 100

// incomeService implements the IncomeSvcFacade interface
type incomeService struct {
	BaseService
	incomeRepo      portsrepo.IncomeRepositoryFacade
	fiscalYearRepo  portsrepo.FiscalYearReader
	bankAccountRepo portsrepo.BankAccountReader
}

// NewIncomeService creates the income record service.
func NewIncomeService(
	incomeRepo portsrepo.IncomeRepositoryFacade,
	fiscalYearRepo portsrepo.FiscalYearReader,
	bankAccountRepo portsrepo.BankAccountReader,
) portssvc.IncomeSvcFacade {
	return &incomeService{
		incomeRepo:      incomeRepo,
		fiscalYearRepo:  fiscalYearRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// clampLimit normalizes a requested page size.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// CreateIncome creates a new draft income in an active fiscal year.
func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method == domain.BankWire {
		if req.BankAccountID == nil || *req.BankAccountID == "" {
			return nil, ErrBankAccountRequired
		}
		if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, *req.BankAccountID); err != nil {
			s.LogError(ctx, err, "Bank account not found for bank wire income", "bank_account_id", *req.BankAccountID)
			return nil, fmt.Errorf("invalid bank account: %w", err)
		}
	} else if req.BankAccountID != nil {
		return nil, ErrBankAccountNotAllowed
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, req.FiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Fiscal year not found for income", "fiscal_year_id", req.FiscalYearID)
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	now := time.Now()
	income := domain.Income{
		IncomeID:      uuid.NewString(),
		FiscalYearID:  req.FiscalYearID,
		SubBudget:     req.SubBudget,
		Category:      req.Category,
		DonorRef:      req.DonorRef,
		Amount:        req.Amount,
		PaymentMethod: method,
		Status:        domain.Draft,
		BankAccountID: req.BankAccountID,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save income", "fiscal_year_id", req.FiscalYearID)
		return nil, fmt.Errorf("failed to save income: %w", err)
	}

	s.LogInfo(ctx, "Income created", "income_id", income.IncomeID, "amount", income.Amount.String(), "payment_method", string(method))
	return &income, nil
}

// GetIncomeByID retrieves an income.
func (s *incomeService) GetIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find income", "income_id", incomeID)
		return nil, err
	}
	return income, nil
}

// ListIncomes lists incomes of a fiscal year, cursor-paginated.
func (s *incomeService) ListIncomes(ctx context.Context, params dto.ListRecordsParams) (*dto.ListIncomesResponse, error) {
	incomes, nextToken, err := s.incomeRepo.ListIncomesByFiscalYear(ctx, params.FiscalYearID, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes", "fiscal_year_id", params.FiscalYearID)
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return &dto.ListIncomesResponse{
		Incomes:   dto.ToIncomeResponses(incomes),
		NextToken: nextToken,
	}, nil
}

// ApproveIncome transitions a draft income to approved. Bank-wire incomes
// credit their bank account inside the repository transaction.
func (s *incomeService) ApproveIncome(ctx context.Context, incomeID string, actorUserID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find income for approval", "income_id", incomeID)
		return nil, err
	}
	if income.Status != domain.Draft {
		return nil, ErrAlreadyApproved
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, income.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	now := time.Now()
	if err := s.incomeRepo.ApproveIncome(ctx, *income, actorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to approve income", "income_id", incomeID)
		return nil, err
	}

	income.Status = domain.Approved
	income.ApprovedBy = actorUserID
	income.ApprovedAt = &now
	income.LastUpdatedAt = now
	income.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Income approved", "income_id", incomeID, "amount", income.Amount.String())
	return income, nil
}
