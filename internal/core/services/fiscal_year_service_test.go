package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/core/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FiscalYearServiceTestSuite struct {
	suite.Suite
	mockFYRepo *MockFiscalYearRepository
	service    portssvc.FiscalYearSvcFacade
}

func (suite *FiscalYearServiceTestSuite) SetupTest() {
	suite.mockFYRepo = new(MockFiscalYearRepository)
	suite.service = services.NewFiscalYearService(suite.mockFYRepo)
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_FirstYearIsActive() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	opening := decimal.NewFromInt(10000)
	req := dto.CreateFiscalYearRequest{Year: 2025, CurrentAmount: &opening}

	suite.mockFYRepo.On("FindFiscalYearByYear", ctx, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFYRepo.On("CountFiscalYears", ctx).Return(0, nil).Once()
	suite.mockFYRepo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear"), mock.MatchedBy(func(b domain.Budget) bool {
		return b.CurrentAmount.Equal(opening) && b.CarryoverPrevYear.IsZero() && b.CarryoverNextYear.IsZero()
	})).Return(nil).Once()

	fy, err := suite.service.CreateFiscalYear(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(fy)
	suite.NotEmpty(fy.FiscalYearID)
	suite.Equal(2025, fy.Year)
	suite.True(fy.IsActive)
	suite.Equal(creatorUserID, fy.CreatedBy)
	suite.WithinDuration(time.Now(), fy.CreatedAt, time.Second)

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_LaterYearStartsInactive() {
	ctx := context.Background()
	req := dto.CreateFiscalYearRequest{Year: 2026}

	suite.mockFYRepo.On("FindFiscalYearByYear", ctx, 2026).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFYRepo.On("CountFiscalYears", ctx).Return(1, nil).Once()
	suite.mockFYRepo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	fy, err := suite.service.CreateFiscalYear(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(fy.IsActive)

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_DuplicateYear() {
	ctx := context.Background()
	existing := &domain.FiscalYear{FiscalYearID: uuid.NewString(), Year: 2025, IsActive: true}
	req := dto.CreateFiscalYearRequest{Year: 2025}

	suite.mockFYRepo.On("FindFiscalYearByYear", ctx, 2025).Return(existing, nil).Once()

	fy, err := suite.service.CreateFiscalYear(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fy)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "SaveFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestCreateFiscalYear_NegativeOpeningBudget() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)
	req := dto.CreateFiscalYearRequest{Year: 2025, CurrentAmount: &negative}

	suite.mockFYRepo.On("FindFiscalYearByYear", ctx, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFYRepo.On("CountFiscalYears", ctx).Return(0, nil).Once()

	fy, err := suite.service.CreateFiscalYear(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fy)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "SaveFiscalYear")
}

func (suite *FiscalYearServiceTestSuite) TestListFiscalYears_Success() {
	ctx := context.Background()
	totals := []domain.FiscalYearTotals{
		{
			FiscalYear:     domain.FiscalYear{FiscalYearID: uuid.NewString(), Year: 2026, IsActive: true},
			TotalIncomes:   decimal.NewFromInt(1200),
			TotalExpenses:  decimal.NewFromInt(800),
			TotalAvailable: decimal.NewFromInt(400),
		},
		{
			FiscalYear: domain.FiscalYear{FiscalYearID: uuid.NewString(), Year: 2025},
		},
	}

	suite.mockFYRepo.On("ListFiscalYearTotals", ctx).Return(totals, nil).Once()

	result, err := suite.service.ListFiscalYears(ctx)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal(2026, result[0].Year)

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func TestFiscalYearService(t *testing.T) {
	suite.Run(t, new(FiscalYearServiceTestSuite))
}
