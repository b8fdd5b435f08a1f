package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/core/domain"
	portssvc "github.com/assocamal/charity_mgmt_app/internal/core/ports/services"
	"github.com/assocamal/charity_mgmt_app/internal/core/services"
	"github.com/assocamal/charity_mgmt_app/internal/dto"
	"github.com/assocamal/charity_mgmt_app/internal/handlers"
	"github.com/assocamal/charity_mgmt_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FiscalYearService ---
type MockFiscalYearService struct {
	mock.Mock
}

func (m *MockFiscalYearService) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}
func (m *MockFiscalYearService) GetFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}
func (m *MockFiscalYearService) ListFiscalYears(ctx context.Context) ([]domain.FiscalYearTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYearTotals), args.Error(1)
}

var _ portssvc.FiscalYearSvcFacade = (*MockFiscalYearService)(nil)

// --- Mock FiscalYearClosingService ---
type MockClosingService struct {
	mock.Mock
}

func (m *MockClosingService) GetClosingStatus(ctx context.Context, fiscalYearID string) (*domain.ClosingStatus, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingStatus), args.Error(1)
}
func (m *MockClosingService) GetClosingSummary(ctx context.Context, fiscalYearID string) (*domain.ClosingSummary, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingSummary), args.Error(1)
}
func (m *MockClosingService) ListUntransferredIncomes(ctx context.Context, fiscalYearID string) ([]domain.Income, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}
func (m *MockClosingService) CloseFiscalYear(ctx context.Context, fiscalYearID string, actorUserID string) (*domain.ClosingResult, error) {
	args := m.Called(ctx, fiscalYearID, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingResult), args.Error(1)
}
func (m *MockClosingService) TransferIncomeToBank(ctx context.Context, incomeID string, req dto.TransferIncomeToBankRequest, actorUserID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

var _ portssvc.FiscalYearClosingSvcFacade = (*MockClosingService)(nil)

// --- Test Suite ---
type FiscalYearHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFYService      *MockFiscalYearService
	mockClosingService *MockClosingService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *FiscalYearHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "charity-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FiscalYearHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockFYService = new(MockFiscalYearService)
	suite.mockClosingService = new(MockClosingService)

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		IsProduction:  true, // skip swagger routes in tests
		AuthRateLimit: "5-M",
	}
	container := &portssvc.ServiceContainer{
		FiscalYear: suite.mockFYService,
		Closing:    suite.mockClosingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *FiscalYearHandlerTestSuite) doRequest(method, url, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FiscalYearHandlerTestSuite) TestCloseFiscalYear_Success() {
	fiscalYearID := uuid.NewString()
	userID := uuid.NewString()
	result := &domain.ClosingResult{
		ClosedYear:     2025,
		NextYear:       2026,
		CarryoverValue: decimal.NewFromInt(3200),
	}

	suite.mockClosingService.On("CloseFiscalYear", mock.Anything, fiscalYearID, userID).Return(result, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/fiscal-years/%s/close", fiscalYearID), userID)

	suite.Equal(http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(true, body["success"])
	suite.Equal(float64(2026), body["nextYear"])
	suite.Equal("Fiscal year 2025 closed, 2026 is now active", body["message"])

	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *FiscalYearHandlerTestSuite) TestCloseFiscalYear_NotClosable() {
	fiscalYearID := uuid.NewString()
	userID := uuid.NewString()
	blocked := fmt.Errorf("2 income(s) pending approval: %w", services.ErrYearNotClosable)

	suite.mockClosingService.On("CloseFiscalYear", mock.Anything, fiscalYearID, userID).Return(nil, blocked).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/fiscal-years/%s/close", fiscalYearID), userID)

	suite.Equal(http.StatusConflict, w.Code)

	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	suite.Contains(body.Message, "2 income(s) pending approval")

	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *FiscalYearHandlerTestSuite) TestCloseFiscalYear_Forbidden() {
	fiscalYearID := uuid.NewString()
	userID := uuid.NewString()
	refused := fmt.Errorf("user is not allowed to close fiscal years: %w", apperrors.ErrForbidden)

	suite.mockClosingService.On("CloseFiscalYear", mock.Anything, fiscalYearID, userID).Return(nil, refused).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/fiscal-years/%s/close", fiscalYearID), userID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *FiscalYearHandlerTestSuite) TestCloseFiscalYear_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/fiscal-years/%s/close", uuid.NewString()), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClosingService.AssertNotCalled(suite.T(), "CloseFiscalYear")
}

func (suite *FiscalYearHandlerTestSuite) TestGetClosingStatus_Success() {
	fiscalYearID := uuid.NewString()
	status := &domain.ClosingStatus{
		FiscalYearID:         fiscalYearID,
		Year:                 2025,
		IsActive:             true,
		PendingApprovals:     3,
		PendingBankTransfers: 1,
		CanClose:             false,
	}

	suite.mockClosingService.On("GetClosingStatus", mock.Anything, fiscalYearID).Return(status, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/fiscal-years/%s/closing-status", fiscalYearID), uuid.NewString())

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Success bool                      `json:"success"`
		Data    dto.ClosingStatusResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal(3, body.Data.PendingApprovals)
	suite.Equal(1, body.Data.PendingBankTransfers)
	suite.False(body.Data.CanClose)

	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *FiscalYearHandlerTestSuite) TestGetClosingSummary_NotFound() {
	fiscalYearID := uuid.NewString()

	suite.mockClosingService.On("GetClosingSummary", mock.Anything, fiscalYearID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/fiscal-years/%s/closing-summary", fiscalYearID), uuid.NewString())

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClosingService.AssertExpectations(suite.T())
}

func (suite *FiscalYearHandlerTestSuite) TestListUntransferredIncomes_Success() {
	fiscalYearID := uuid.NewString()
	incomes := []domain.Income{
		{
			IncomeID:      uuid.NewString(),
			FiscalYearID:  fiscalYearID,
			Amount:        decimal.NewFromInt(120),
			PaymentMethod: domain.Cash,
			Status:        domain.Approved,
		},
	}

	suite.mockClosingService.On("ListUntransferredIncomes", mock.Anything, fiscalYearID).Return(incomes, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/fiscal-years/%s/untransferred-incomes", fiscalYearID), uuid.NewString())

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Success bool                 `json:"success"`
		Data    []dto.IncomeResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Data, 1)
	suite.Equal(incomes[0].IncomeID, body.Data[0].IncomeID)

	suite.mockClosingService.AssertExpectations(suite.T())
	suite.mockFYService.AssertNotCalled(suite.T(), "ListFiscalYears")
}

// --- Run Test Suite ---
func TestFiscalYearHandler(t *testing.T) {
	suite.Run(t, new(FiscalYearHandlerTestSuite))
}
