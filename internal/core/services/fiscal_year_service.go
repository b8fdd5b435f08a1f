package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fiscalYearService implements the FiscalYearSvcFacade interface
type fiscalYearService struct {
	BaseService
	fiscalYearRepo portsrepo.FiscalYearRepositoryFacade
}

// NewFiscalYearService creates the fiscal year management service.
func NewFiscalYearService(fiscalYearRepo portsrepo.FiscalYearRepositoryFacade) portssvc.FiscalYearSvcFacade {
	return &fiscalYearService{fiscalYearRepo: fiscalYearRepo}
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearService)(nil)

// CreateFiscalYear creates a new fiscal year with its budget. The very first
// fiscal year becomes active; later years start inactive and are activated by
// closing their predecessor.
func (s *fiscalYearService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	existing, err := s.fiscalYearRepo.FindFiscalYearByYear(ctx, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing fiscal year", "year", req.Year)
		return nil, fmt.Errorf("failed to check for existing fiscal year: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("fiscal year %d already exists: %w", req.Year, apperrors.ErrDuplicate)
	}

	count, err := s.fiscalYearRepo.CountFiscalYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count fiscal years")
		return nil, fmt.Errorf("failed to count fiscal years: %w", err)
	}

	openingAmount := decimal.Zero
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("opening budget must not be negative: %w", apperrors.ErrValidation)
		}
		openingAmount = *req.CurrentAmount
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	fiscalYear := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         req.Year,
		IsActive:     count == 0,
		AuditFields:  audit,
	}
	budget := domain.Budget{
		BudgetID:          uuid.NewString(),
		FiscalYearID:      fiscalYear.FiscalYearID,
		CurrentAmount:     openingAmount,
		CarryoverPrevYear: decimal.Zero,
		CarryoverNextYear: decimal.Zero,
		AuditFields:       audit,
	}

	if err := s.fiscalYearRepo.SaveFiscalYear(ctx, fiscalYear, budget); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal year", "year", req.Year)
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}

	s.LogInfo(ctx, "Fiscal year created", "fiscal_year_id", fiscalYear.FiscalYearID, "year", fiscalYear.Year, "is_active", fiscalYear.IsActive)
	return &fiscalYear, nil
}

// GetFiscalYearByID retrieves a fiscal year.
func (s *fiscalYearService) GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find fiscal year", "fiscal_year_id", fiscalYearID)
		return nil, err
	}
	return fy, nil
}

// ListFiscalYears lists all fiscal years with computed totals, newest first.
func (s *fiscalYearService) ListFiscalYears(ctx context.Context) ([]domain.FiscalYearTotals, error) {
	totals, err := s.fiscalYearRepo.ListFiscalYearTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years")
		return nil, fmt.Errorf("failed to list fiscal years: %w", err)
	}
	return totals, nil
}
