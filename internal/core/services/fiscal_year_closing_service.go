package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/shopspring/decimal"
)

// fiscalYearClosingService implements the FiscalYearClosingSvcFacade interface
type fiscalYearClosingService struct {
	BaseService
	fiscalYearRepo  portsrepo.FiscalYearRepositoryFacade
	incomeRepo      portsrepo.IncomeRepositoryFacade
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
	closePolicy     portssvc.ClosePolicy
}

// NewFiscalYearClosingService creates the closing workflow service. A nil
// policy falls back to the allow-all policy.
func NewFiscalYearClosingService(
	fiscalYearRepo portsrepo.FiscalYearRepositoryFacade,
	incomeRepo portsrepo.IncomeRepositoryFacade,
	bankAccountRepo portsrepo.BankAccountRepositoryFacade,
	closePolicy portssvc.ClosePolicy,
) portssvc.FiscalYearClosingSvcFacade {
	if closePolicy == nil {
		closePolicy = NewAllowAllClosePolicy()
	}
	return &fiscalYearClosingService{
		fiscalYearRepo:  fiscalYearRepo,
		incomeRepo:      incomeRepo,
		bankAccountRepo: bankAccountRepo,
		closePolicy:     closePolicy,
	}
}

var _ portssvc.FiscalYearClosingSvcFacade = (*fiscalYearClosingService)(nil)

// buildSummary derives the closability view from the raw aggregates.
// currentCash counts money already banked plus approved cash/cheque incomes
// still in the cash box; closing requires that cash box to be empty.
func buildSummary(fy *domain.FiscalYear, agg *domain.ClosingAggregates) *domain.ClosingSummary {
	currentCash := agg.BankTotal.Add(agg.UntransferredAmount)
	cashIsValid := currentCash.GreaterThanOrEqual(decimal.Zero) &&
		len(agg.OverdrawnAccounts) == 0 &&
		agg.UntransferredAmount.IsZero()

	var messages []string
	if !fy.IsActive {
		messages = append(messages, "fiscal year is already closed")
	}
	if agg.DraftIncomes > 0 {
		messages = append(messages, fmt.Sprintf("%d income(s) pending approval", agg.DraftIncomes))
	}
	if agg.DraftExpenses > 0 {
		messages = append(messages, fmt.Sprintf("%d expense(s) pending approval", agg.DraftExpenses))
	}
	if agg.DraftTransfers > 0 {
		messages = append(messages, fmt.Sprintf("%d transfer(s) pending approval", agg.DraftTransfers))
	}
	if agg.UntransferredCount > 0 {
		messages = append(messages, fmt.Sprintf("%d cash/cheque income(s) not yet transferred to a bank account", agg.UntransferredCount))
	}
	for _, label := range agg.OverdrawnAccounts {
		messages = append(messages, fmt.Sprintf("bank account %q has a negative balance", label))
	}
	if currentCash.IsNegative() {
		messages = append(messages, "current cash position is negative")
	}

	pendingApprovals := agg.DraftIncomes + agg.DraftExpenses + agg.DraftTransfers
	canClose := fy.IsActive &&
		pendingApprovals == 0 &&
		agg.UntransferredCount == 0 &&
		cashIsValid

	return &domain.ClosingSummary{
		FiscalYearID:         fy.FiscalYearID,
		Year:                 fy.Year,
		IsActive:             fy.IsActive,
		UnapprovedIncomes:    agg.DraftIncomes,
		UnapprovedExpenses:   agg.DraftExpenses,
		UnapprovedTransfers:  agg.DraftTransfers,
		UntransferredIncomes: agg.UntransferredCount,
		UntransferredAmount:  agg.UntransferredAmount,
		BankTotal:            agg.BankTotal,
		CurrentCash:          currentCash,
		CashIsValid:          cashIsValid,
		CanClose:             canClose,
		ValidationMessages:   messages,
	}
}

// GetClosingStatus returns the lightweight closability status of a fiscal year.
func (s *fiscalYearClosingService) GetClosingStatus(ctx context.Context, fiscalYearID string) (*domain.ClosingStatus, error) {
	summary, err := s.GetClosingSummary(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	return &domain.ClosingStatus{
		FiscalYearID:         summary.FiscalYearID,
		Year:                 summary.Year,
		IsActive:             summary.IsActive,
		PendingApprovals:     summary.UnapprovedIncomes + summary.UnapprovedExpenses + summary.UnapprovedTransfers,
		PendingBankTransfers: summary.UntransferredIncomes,
		CanClose:             summary.CanClose,
	}, nil
}

// GetClosingSummary computes the full closing summary of a fiscal year.
func (s *fiscalYearClosingService) GetClosingSummary(ctx context.Context, fiscalYearID string) (*domain.ClosingSummary, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find fiscal year for closing summary", "fiscal_year_id", fiscalYearID)
		return nil, err
	}

	agg, err := s.fiscalYearRepo.GetClosingAggregates(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read closing aggregates", "fiscal_year_id", fiscalYearID)
		return nil, fmt.Errorf("failed to read closing aggregates: %w", err)
	}

	return buildSummary(fy, agg), nil
}

// ListUntransferredIncomes lists approved cash/cheque incomes awaiting a bank deposit.
func (s *fiscalYearClosingService) ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error) {
	if _, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID); err != nil {
		return nil, err
	}
	incomes, err := s.incomeRepo.ListUntransferredIncomes(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list untransferred incomes", "fiscal_year_id", fiscalYearID)
		return nil, fmt.Errorf("failed to list untransferred incomes: %w", err)
	}
	return incomes, nil
}

// CloseFiscalYear validates and performs the irreversible close of a fiscal
// year. The service validates against a snapshot for clean error messages;
// the repository re-checks everything under row locks before committing.
func (s *fiscalYearClosingService) CloseFiscalYear(ctx context.Context, fiscalYearID string, actorUserID string) (*domain.ClosingResult, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find fiscal year for close", "fiscal_year_id", fiscalYearID)
		return nil, err
	}

	if !s.closePolicy.CanCloseFiscalYear(ctx, actorUserID, *fy) {
		err := fmt.Errorf("user is not allowed to close fiscal years: %w", apperrors.ErrForbidden)
		s.LogError(ctx, err, "Close refused by policy", "fiscal_year_id", fiscalYearID, "user_id", actorUserID)
		return nil, err
	}

	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	agg, err := s.fiscalYearRepo.GetClosingAggregates(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read closing aggregates", "fiscal_year_id", fiscalYearID)
		return nil, fmt.Errorf("failed to read closing aggregates: %w", err)
	}

	summary := buildSummary(fy, agg)
	if !summary.CanClose {
		return nil, fmt.Errorf("%s: %w", strings.Join(summary.ValidationMessages, "; "), ErrYearNotClosable)
	}

	result, err := s.fiscalYearRepo.CloseAndRollForward(ctx, *fy, actorUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", "fiscal_year_id", fiscalYearID)
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year closed",
		"fiscal_year_id", fiscalYearID,
		"closed_year", result.ClosedYear,
		"next_year", result.NextYear,
		"carryover", result.CarryoverValue.String(),
	)
	return result, nil
}

// TransferIncomeToBank deposits an approved cash/cheque income into a bank account.
func (s *fiscalYearClosingService) TransferIncomeToBank(ctx context.Context, incomeID string, req dto.TransferIncomeToBankRequest, actorUserID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find income for bank transfer", "income_id", incomeID)
		return nil, err
	}

	if income.Status != domain.Approved {
		return nil, ErrIncomeNotApproved
	}
	if !income.PaymentMethod.RequiresBankTransfer() {
		return nil, ErrNotBankTransferable
	}
	if income.IsTransferred() {
		return nil, ErrAlreadyTransferred
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, income.FiscalYearID)
	if err != nil {
		return nil, err
	}
	if !fy.IsActive {
		return nil, ErrYearNotActive
	}

	if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, req.BankAccountID); err != nil {
		s.LogError(ctx, err, "Bank account not found for income transfer", "bank_account_id", req.BankAccountID)
		return nil, fmt.Errorf("invalid bank account: %w", err)
	}

	updated, err := s.incomeRepo.TransferIncomeToBank(ctx, incomeID, req.BankAccountID, req.Remarks, actorUserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to transfer income to bank", "income_id", incomeID, "bank_account_id", req.BankAccountID)
		return nil, err
	}

	s.LogInfo(ctx, "Income transferred to bank",
		"income_id", incomeID,
		"bank_account_id", req.BankAccountID,
		"amount", updated.Amount.String(),
	)
	return updated, nil
}
