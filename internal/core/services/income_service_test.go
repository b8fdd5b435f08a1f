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

type IncomeServiceTestSuite struct {
	suite.Suite
	mockIncomeRepo *MockIncomeRepository
	mockFYRepo     *MockFiscalYearRepository
	mockBankRepo   *MockBankAccountRepository
	service        portssvc.IncomeSvcFacade
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.mockFYRepo = new(MockFiscalYearRepository)
	suite.mockBankRepo = new(MockBankAccountRepository)
	suite.service = services.NewIncomeService(suite.mockIncomeRepo, suite.mockFYRepo, suite.mockBankRepo)
}

func (suite *IncomeServiceTestSuite) activeYear() *domain.FiscalYear {
	return &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         2025,
		IsActive:     true,
	}
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_CashSuccess() {
	ctx := context.Background()
	fy := suite.activeYear()
	creatorUserID := uuid.NewString()
	req := dto.CreateIncomeRequest{
		FiscalYearID:  fy.FiscalYearID,
		SubBudget:     "Education",
		Category:      "Donation",
		DonorRef:      "donor-42",
		Amount:        decimal.NewFromInt(150),
		PaymentMethod: string(domain.Cash),
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockIncomeRepo.On("SaveIncome", ctx, mock.AnythingOfType("domain.Income")).Return(nil).Once()

	income, err := suite.service.CreateIncome(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(income)
	suite.NotEmpty(income.IncomeID)
	suite.Equal(domain.Draft, income.Status)
	suite.Equal(domain.Cash, income.PaymentMethod)
	suite.Nil(income.BankAccountID)
	suite.Equal(creatorUserID, income.CreatedBy)
	suite.WithinDuration(time.Now(), income.CreatedAt, time.Second)

	suite.mockIncomeRepo.AssertExpectations(suite.T())
	suite.mockBankRepo.AssertNotCalled(suite.T(), "FindBankAccountByID")
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_BankWireSuccess() {
	ctx := context.Background()
	fy := suite.activeYear()
	account := &domain.BankAccount{BankAccountID: uuid.NewString(), Label: "Main"}
	req := dto.CreateIncomeRequest{
		FiscalYearID:  fy.FiscalYearID,
		SubBudget:     "General",
		Category:      "Grant",
		Amount:        decimal.NewFromInt(5000),
		PaymentMethod: string(domain.BankWire),
		BankAccountID: &account.BankAccountID,
	}

	suite.mockBankRepo.On("FindBankAccountByID", ctx, account.BankAccountID).Return(account, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockIncomeRepo.On("SaveIncome", ctx, mock.AnythingOfType("domain.Income")).Return(nil).Once()

	income, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(income.BankAccountID)
	suite.Equal(account.BankAccountID, *income.BankAccountID)
	suite.Equal(domain.Draft, income.Status)

	suite.mockIncomeRepo.AssertExpectations(suite.T())
	suite.mockBankRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		FiscalYearID:  uuid.NewString(),
		SubBudget:     "General",
		Category:      "Donation",
		Amount:        decimal.Zero,
		PaymentMethod: string(domain.Cash),
	}

	income, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(income)
	suite.ErrorIs(err, services.ErrNonPositiveAmount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "SaveIncome")
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_BankWireWithoutAccount() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		FiscalYearID:  uuid.NewString(),
		SubBudget:     "General",
		Category:      "Grant",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: string(domain.BankWire),
	}

	income, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(income)
	suite.ErrorIs(err, services.ErrBankAccountRequired)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "SaveIncome")
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_CashWithAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateIncomeRequest{
		FiscalYearID:  uuid.NewString(),
		SubBudget:     "General",
		Category:      "Donation",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: string(domain.Cash),
		BankAccountID: &accountID,
	}

	income, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(income)
	suite.ErrorIs(err, services.ErrBankAccountNotAllowed)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "SaveIncome")
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_ClosedYear() {
	ctx := context.Background()
	fy := suite.activeYear()
	fy.IsActive = false
	req := dto.CreateIncomeRequest{
		FiscalYearID:  fy.FiscalYearID,
		SubBudget:     "General",
		Category:      "Donation",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: string(domain.Cheque),
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()

	income, err := suite.service.CreateIncome(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(income)
	suite.ErrorIs(err, services.ErrYearNotActive)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "SaveIncome")
}

func (suite *IncomeServiceTestSuite) TestApproveIncome_Success() {
	ctx := context.Background()
	fy := suite.activeYear()
	actorUserID := uuid.NewString()
	income := &domain.Income{
		IncomeID:      uuid.NewString(),
		FiscalYearID:  fy.FiscalYearID,
		Amount:        decimal.NewFromInt(75),
		PaymentMethod: domain.Cash,
		Status:        domain.Draft,
	}

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockIncomeRepo.On("ApproveIncome", ctx, mock.AnythingOfType("domain.Income"), actorUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveIncome(ctx, income.IncomeID, actorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, approved.Status)
	suite.Equal(actorUserID, approved.ApprovedBy)
	suite.Require().NotNil(approved.ApprovedAt)
	suite.WithinDuration(time.Now(), *approved.ApprovedAt, time.Second)

	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestApproveIncome_AlreadyApproved() {
	ctx := context.Background()
	income := &domain.Income{
		IncomeID:      uuid.NewString(),
		FiscalYearID:  uuid.NewString(),
		Amount:        decimal.NewFromInt(75),
		PaymentMethod: domain.Cash,
		Status:        domain.Approved,
	}

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()

	approved, err := suite.service.ApproveIncome(ctx, income.IncomeID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(approved)
	suite.ErrorIs(err, services.ErrAlreadyApproved)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "ApproveIncome")
}

func (suite *IncomeServiceTestSuite) TestListIncomes_ClampsLimit() {
	ctx := context.Background()
	fiscalYearID := uuid.NewString()
	params := dto.ListRecordsParams{FiscalYearID: fiscalYearID, Limit: 0}

	suite.mockIncomeRepo.On("ListIncomesByFiscalYear", ctx, fiscalYearID, 25, (*string)(nil)).Return([]domain.Income{}, nil, nil).Once()

	resp, err := suite.service.ListIncomes(ctx, params)

	suite.Require().NoError(err)
	suite.Empty(resp.Incomes)
	suite.Nil(resp.NextToken)

	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

func TestIncomeService(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
