package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portsrepo "github.com/assocamal/charity_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/core/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockFiscalYearRepository is a mock type for the FiscalYearRepositoryFacade
// interface, shared by the service tests in this package.
type MockFiscalYearRepository struct {
	mock.Mock
}

func (m *MockFiscalYearRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindFiscalYearByYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) FindActiveFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) ListFiscalYearTotals(ctx context.Context) ([]domain.FiscalYearTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYearTotals), args.Error(1)
}

func (m *MockFiscalYearRepository) FindBudgetByFiscalYearID(ctx context.Context, fiscalYearID string) (*domain.Budget, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockFiscalYearRepository) CountFiscalYears(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFiscalYearRepository) SaveFiscalYear(ctx context.Context, fiscalYear domain.FiscalYear, budget domain.Budget) error {
	args := m.Called(ctx, fiscalYear, budget)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) GetClosingAggregates(ctx context.Context, fiscalYearID string) (*domain.ClosingAggregates, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingAggregates), args.Error(1)
}

func (m *MockFiscalYearRepository) CloseAndRollForward(ctx context.Context, fiscalYear domain.FiscalYear, userID string) (*domain.ClosingResult, error) {
	args := m.Called(ctx, fiscalYear, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingResult), args.Error(1)
}

var _ portsrepo.FiscalYearRepositoryFacade = (*MockFiscalYearRepository)(nil)

// MockIncomeRepository is a mock type for the IncomeRepositoryFacade interface
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomesByFiscalYear(ctx context.Context, fiscalYearID string, limit int, nextToken *string) ([]domain.Income, *string, error) {
	args := m.Called(ctx, fiscalYearID, limit, nextToken)
	var incomes []domain.Income
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.Income)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return incomes, token, args.Error(2)
}

func (m *MockIncomeRepository) ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) ApproveIncome(ctx context.Context, income domain.Income, userID string, now time.Time) error {
	args := m.Called(ctx, income, userID, now)
	return args.Error(0)
}

func (m *MockIncomeRepository) TransferIncomeToBank(ctx context.Context, incomeID string, bankAccountID string, remarks string, userID string, now time.Time) (*domain.Income, error) {
	args := m.Called(ctx, incomeID, bankAccountID, remarks, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

var _ portsrepo.IncomeRepositoryFacade = (*MockIncomeRepository)(nil)

// MockBankAccountRepository is a mock type for the BankAccountRepositoryFacade interface
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

var _ portsrepo.BankAccountRepositoryFacade = (*MockBankAccountRepository)(nil)

// denyAllClosePolicy refuses every close attempt.
type denyAllClosePolicy struct{}

func (denyAllClosePolicy) CanCloseFiscalYear(ctx context.Context, actorUserID string, fiscalYear domain.FiscalYear) bool {
	return false
}

// --- Test Suite Setup ---

type FiscalYearClosingServiceTestSuite struct {
	suite.Suite
	mockFYRepo     *MockFiscalYearRepository
	mockIncomeRepo *MockIncomeRepository
	mockBankRepo   *MockBankAccountRepository
	service        portssvc.FiscalYearClosingSvcFacade
}

func (suite *FiscalYearClosingServiceTestSuite) SetupTest() {
	suite.mockFYRepo = new(MockFiscalYearRepository)
	suite.mockIncomeRepo = new(MockIncomeRepository)
	suite.mockBankRepo = new(MockBankAccountRepository)
	suite.service = services.NewFiscalYearClosingService(suite.mockFYRepo, suite.mockIncomeRepo, suite.mockBankRepo, nil)
}

func (suite *FiscalYearClosingServiceTestSuite) activeYear() *domain.FiscalYear {
	return &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Year:         2025,
		IsActive:     true,
	}
}

func cleanAggregates(bankTotal decimal.Decimal) *domain.ClosingAggregates {
	return &domain.ClosingAggregates{
		UntransferredAmount: decimal.Zero,
		BankTotal:           bankTotal,
	}
}

// --- GetClosingSummary ---

func (suite *FiscalYearClosingServiceTestSuite) TestGetClosingSummary_Closable() {
	ctx := context.Background()
	fy := suite.activeYear()
	bankTotal := decimal.NewFromInt(1500)

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(cleanAggregates(bankTotal), nil).Once()

	summary, err := suite.service.GetClosingSummary(ctx, fy.FiscalYearID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.CanClose)
	suite.True(summary.CashIsValid)
	suite.True(summary.CurrentCash.Equal(bankTotal))
	suite.Empty(summary.ValidationMessages)

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearClosingServiceTestSuite) TestGetClosingSummary_PendingWork() {
	ctx := context.Background()
	fy := suite.activeYear()
	agg := &domain.ClosingAggregates{
		DraftIncomes:        2,
		DraftExpenses:       1,
		UntransferredCount:  3,
		UntransferredAmount: decimal.NewFromInt(250),
		BankTotal:           decimal.NewFromInt(1000),
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(agg, nil).Once()

	summary, err := suite.service.GetClosingSummary(ctx, fy.FiscalYearID)

	suite.Require().NoError(err)
	suite.False(summary.CanClose)
	suite.False(summary.CashIsValid) // cash box not empty
	suite.True(summary.CurrentCash.Equal(decimal.NewFromInt(1250)))
	suite.Contains(summary.ValidationMessages, "2 income(s) pending approval")
	suite.Contains(summary.ValidationMessages, "1 expense(s) pending approval")
	suite.Contains(summary.ValidationMessages, "3 cash/cheque income(s) not yet transferred to a bank account")

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearClosingServiceTestSuite) TestGetClosingSummary_OverdrawnAccount() {
	ctx := context.Background()
	fy := suite.activeYear()
	agg := &domain.ClosingAggregates{
		UntransferredAmount: decimal.Zero,
		BankTotal:           decimal.NewFromInt(-40),
		OverdrawnAccounts:   []string{"Main current account"},
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(agg, nil).Once()

	summary, err := suite.service.GetClosingSummary(ctx, fy.FiscalYearID)

	suite.Require().NoError(err)
	suite.False(summary.CanClose)
	suite.False(summary.CashIsValid)
	suite.Contains(summary.ValidationMessages, `bank account "Main current account" has a negative balance`)
	suite.Contains(summary.ValidationMessages, "current cash position is negative")

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearClosingServiceTestSuite) TestGetClosingSummary_NotFound() {
	ctx := context.Background()
	fiscalYearID := uuid.NewString()

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fiscalYearID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetClosingSummary(ctx, fiscalYearID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "GetClosingAggregates")
}

// --- GetClosingStatus ---

func (suite *FiscalYearClosingServiceTestSuite) TestGetClosingStatus_AggregatesPendingWork() {
	ctx := context.Background()
	fy := suite.activeYear()
	agg := &domain.ClosingAggregates{
		DraftIncomes:        1,
		DraftExpenses:       2,
		DraftTransfers:      3,
		UntransferredCount:  4,
		UntransferredAmount: decimal.NewFromInt(80),
		BankTotal:           decimal.NewFromInt(500),
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(agg, nil).Once()

	status, err := suite.service.GetClosingStatus(ctx, fy.FiscalYearID)

	suite.Require().NoError(err)
	suite.Equal(6, status.PendingApprovals)
	suite.Equal(4, status.PendingBankTransfers)
	suite.True(status.IsActive)
	suite.False(status.CanClose)

	suite.mockFYRepo.AssertExpectations(suite.T())
}

// --- CloseFiscalYear ---

func (suite *FiscalYearClosingServiceTestSuite) TestCloseFiscalYear_Success() {
	ctx := context.Background()
	fy := suite.activeYear()
	actorUserID := uuid.NewString()
	bankTotal := decimal.NewFromInt(3200)
	expected := &domain.ClosingResult{
		ClosedYear:     fy.Year,
		NextYear:       fy.Year + 1,
		CarryoverValue: bankTotal,
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(cleanAggregates(bankTotal), nil).Once()
	suite.mockFYRepo.On("CloseAndRollForward", ctx, *fy, actorUserID).Return(expected, nil).Once()

	result, err := suite.service.CloseFiscalYear(ctx, fy.FiscalYearID, actorUserID)

	suite.Require().NoError(err)
	suite.Equal(expected, result)
	suite.True(result.CarryoverValue.Equal(bankTotal))

	suite.mockFYRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearClosingServiceTestSuite) TestCloseFiscalYear_AlreadyClosed() {
	ctx := context.Background()
	fy := suite.activeYear()
	fy.IsActive = false

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.CloseFiscalYear(ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrYearNotActive)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "CloseAndRollForward")
}

func (suite *FiscalYearClosingServiceTestSuite) TestCloseFiscalYear_BlockedByPendingWork() {
	ctx := context.Background()
	fy := suite.activeYear()
	agg := &domain.ClosingAggregates{
		DraftTransfers:      1,
		UntransferredCount:  2,
		UntransferredAmount: decimal.NewFromInt(60),
		BankTotal:           decimal.NewFromInt(900),
	}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(agg, nil).Once()

	result, err := suite.service.CloseFiscalYear(ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrYearNotClosable)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "1 transfer(s) pending approval")
	suite.Contains(err.Error(), "2 cash/cheque income(s) not yet transferred to a bank account")
	suite.mockFYRepo.AssertNotCalled(suite.T(), "CloseAndRollForward")
}

func (suite *FiscalYearClosingServiceTestSuite) TestCloseFiscalYear_PolicyRefusal() {
	ctx := context.Background()
	fy := suite.activeYear()
	denyingService := services.NewFiscalYearClosingService(suite.mockFYRepo, suite.mockIncomeRepo, suite.mockBankRepo, denyAllClosePolicy{})

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := denyingService.CloseFiscalYear(ctx, fy.FiscalYearID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockFYRepo.AssertNotCalled(suite.T(), "GetClosingAggregates")
	suite.mockFYRepo.AssertNotCalled(suite.T(), "CloseAndRollForward")
}

func (suite *FiscalYearClosingServiceTestSuite) TestCloseFiscalYear_RepoConflict() {
	// The repository re-checks under locks; a concurrent draft surfaces as a conflict.
	ctx := context.Background()
	fy := suite.activeYear()
	actorUserID := uuid.NewString()

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockFYRepo.On("GetClosingAggregates", ctx, fy.FiscalYearID).Return(cleanAggregates(decimal.NewFromInt(100)), nil).Once()
	suite.mockFYRepo.On("CloseAndRollForward", ctx, *fy, actorUserID).Return(nil, apperrors.ErrConflict).Once()

	result, err := suite.service.CloseFiscalYear(ctx, fy.FiscalYearID, actorUserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockFYRepo.AssertExpectations(suite.T())
}

// --- TransferIncomeToBank ---

func (suite *FiscalYearClosingServiceTestSuite) transferableIncome(fiscalYearID string) *domain.Income {
	approvedAt := time.Now().Add(-time.Hour)
	return &domain.Income{
		IncomeID:      uuid.NewString(),
		FiscalYearID:  fiscalYearID,
		SubBudget:     "General",
		Category:      "Donation",
		Amount:        decimal.NewFromInt(200),
		PaymentMethod: domain.Cash,
		Status:        domain.Approved,
		ApprovedAt:    &approvedAt,
	}
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_Success() {
	ctx := context.Background()
	fy := suite.activeYear()
	income := suite.transferableIncome(fy.FiscalYearID)
	actorUserID := uuid.NewString()
	account := &domain.BankAccount{BankAccountID: uuid.NewString(), Label: "Main"}
	req := dto.TransferIncomeToBankRequest{BankAccountID: account.BankAccountID, Remarks: "deposited"}

	transferredAt := time.Now()
	updated := *income
	updated.BankAccountID = &account.BankAccountID
	updated.TransferredAt = &transferredAt
	updated.Remarks = req.Remarks

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockBankRepo.On("FindBankAccountByID", ctx, account.BankAccountID).Return(account, nil).Once()
	suite.mockIncomeRepo.On("TransferIncomeToBank", ctx, income.IncomeID, account.BankAccountID, req.Remarks, actorUserID, mock.AnythingOfType("time.Time")).Return(&updated, nil).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, req, actorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.IsTransferred())
	suite.Equal(account.BankAccountID, *result.BankAccountID)

	suite.mockIncomeRepo.AssertExpectations(suite.T())
	suite.mockBankRepo.AssertExpectations(suite.T())
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_DraftIncome() {
	ctx := context.Background()
	fy := suite.activeYear()
	income := suite.transferableIncome(fy.FiscalYearID)
	income.Status = domain.Draft
	income.ApprovedAt = nil

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, dto.TransferIncomeToBankRequest{BankAccountID: uuid.NewString()}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrIncomeNotApproved)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "TransferIncomeToBank")
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_BankWireIncome() {
	ctx := context.Background()
	fy := suite.activeYear()
	income := suite.transferableIncome(fy.FiscalYearID)
	accountID := uuid.NewString()
	income.PaymentMethod = domain.BankWire
	income.BankAccountID = &accountID

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, dto.TransferIncomeToBankRequest{BankAccountID: uuid.NewString()}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrNotBankTransferable)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "TransferIncomeToBank")
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_AlreadyTransferred() {
	ctx := context.Background()
	fy := suite.activeYear()
	income := suite.transferableIncome(fy.FiscalYearID)
	accountID := uuid.NewString()
	transferredAt := time.Now().Add(-time.Minute)
	income.BankAccountID = &accountID
	income.TransferredAt = &transferredAt

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, dto.TransferIncomeToBankRequest{BankAccountID: uuid.NewString()}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrAlreadyTransferred)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "TransferIncomeToBank")
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_ClosedYear() {
	ctx := context.Background()
	fy := suite.activeYear()
	fy.IsActive = false
	income := suite.transferableIncome(fy.FiscalYearID)

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, dto.TransferIncomeToBankRequest{BankAccountID: uuid.NewString()}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrYearNotActive)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "TransferIncomeToBank")
}

func (suite *FiscalYearClosingServiceTestSuite) TestTransferIncomeToBank_UnknownBankAccount() {
	ctx := context.Background()
	fy := suite.activeYear()
	income := suite.transferableIncome(fy.FiscalYearID)
	bankAccountID := uuid.NewString()

	suite.mockIncomeRepo.On("FindIncomeByID", ctx, income.IncomeID).Return(income, nil).Once()
	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockBankRepo.On("FindBankAccountByID", ctx, bankAccountID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.TransferIncomeToBank(ctx, income.IncomeID, dto.TransferIncomeToBankRequest{BankAccountID: bankAccountID}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockIncomeRepo.AssertNotCalled(suite.T(), "TransferIncomeToBank")
}

// --- ListUntransferredIncomes ---

func (suite *FiscalYearClosingServiceTestSuite) TestListUntransferredIncomes_Success() {
	ctx := context.Background()
	fy := suite.activeYear()
	incomes := []domain.Income{*suite.transferableIncome(fy.FiscalYearID), *suite.transferableIncome(fy.FiscalYearID)}

	suite.mockFYRepo.On("FindFiscalYearByID", ctx, fy.FiscalYearID).Return(fy, nil).Once()
	suite.mockIncomeRepo.On("ListUntransferredIncomes", ctx, fy.FiscalYearID).Return(incomes, nil).Once()

	result, err := suite.service.ListUntransferredIncomes(ctx, fy.FiscalYearID)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	suite.mockFYRepo.AssertExpectations(suite.T())
	suite.mockIncomeRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestFiscalYearClosingService(t *testing.T) {
	suite.Run(t, new(FiscalYearClosingServiceTestSuite))
}
