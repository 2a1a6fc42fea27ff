package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/handlers"
	"github.com/fintrackr/finance_tracker_app/internal/platform/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter query.Filter, sort query.Sort) ([]domain.Transaction, domain.Source, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, domain.SourceDatabase, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(domain.Source), args.Error(2)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, domain.Durability, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(domain.Durability), args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, domain.Durability, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(domain.Durability), args.Error(2)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) (domain.Durability, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(domain.Durability), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListBudgets(ctx context.Context) ([]domain.Budget, domain.Source, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, domain.SourceDatabase, args.Error(2)
	}
	return args.Get(0).([]domain.Budget), args.Get(1).(domain.Source), args.Error(2)
}

func (m *MockBudgetService) GetBudgetAmount(ctx context.Context, category domain.Category) (decimal.Decimal, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetService) TotalBudget(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, domain.Durability, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Get(1).(domain.Durability), args.Error(2)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockReportingService) MonthlySeries(ctx context.Context, from, to time.Time) ([]domain.MonthlyPoint, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyPoint), args.Error(1)
}

func (m *MockReportingService) CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) BudgetOverview(ctx context.Context) (*domain.BudgetOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetOverview), args.Error(1)
}

func (m *MockReportingService) DashboardInsights(ctx context.Context, from, to time.Time) (*domain.Insights, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Insights), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockTxnSvc    *MockTransactionService
	mockBudgetSvc *MockBudgetService
	mockReportSvc *MockReportingService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockTxnSvc = new(MockTransactionService)
	suite.mockBudgetSvc = new(MockBudgetService)
	suite.mockReportSvc = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Transaction: suite.mockTxnSvc,
		Budget:      suite.mockBudgetSvc,
		Reporting:   suite.mockReportSvc,
	}

	cfg := &config.Config{
		FrontendBaseURL: "http://localhost:3000",
		IsProduction:    true,
	}
	limiterInstance := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1000})

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, limiterInstance)
}

func (suite *TransactionHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTxn() *domain.Transaction {
	date, _ := time.Parse("2006-01-02", "2024-03-05")
	return &domain.Transaction{
		TransactionID: "t1",
		Amount:        decimal.RequireFromString("42.50"),
		Type:          domain.Expense,
		Description:   "Groceries",
		Category:      domain.CategoryFood,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt: date,
			UpdatedAt: date,
		},
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestHealth() {
	w := suite.perform(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	suite.mockTxnSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Description == "Groceries" && r.Type == domain.Expense
	})).Return(sampleTxn(), domain.DurabilityPersisted, nil).Once()

	body := `{"amount":"42.50","type":"expense","description":"Groceries","category":"Food","date":"2024-03-05"}`
	w := suite.perform(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("t1", resp.ID)
	suite.Equal("2024-03-05", resp.Date)
	suite.Equal(domain.DurabilityPersisted, resp.Durability)

	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFields() {
	w := suite.perform(http.MethodPost, "/api/v1/transactions", `{"amount":"10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockTxnSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, domain.Durability(""), apperrors.ErrValidation).Once()

	body := `{"amount":"10","type":"expense","description":"x","category":"Food","date":"2024-13-99"}`
	w := suite.perform(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_WithFilter() {
	date, _ := time.Parse("2006-01-02", "2024-03-01")
	suite.mockTxnSvc.On("ListTransactions", mock.Anything,
		query.Filter{Category: domain.CategoryFood, From: date},
		query.Sort{Field: query.SortByAmount, Direction: query.Ascending},
	).Return([]domain.Transaction{*sampleTxn()}, domain.SourceDatabase, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions?category=Food&from=2024-03-01&sortBy=amount&sortDir=asc", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal(domain.SourceDatabase, resp.Source)
	suite.True(resp.Summary.TotalExpenses.Equal(decimal.RequireFromString("42.5")))
	suite.Equal(1, resp.Summary.Count)

	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_UnknownCategory() {
	w := suite.perform(http.MethodGet, "/api/v1/transactions?category=Gadgets", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockTxnSvc.On("GetTransactionByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions/missing", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	suite.mockTxnSvc.On("DeleteTransaction", mock.Anything, "t1").
		Return(domain.DurabilityMemoryOnly, nil).Once()

	w := suite.perform(http.MethodDelete, "/api/v1/transactions/t1", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("memory_only", resp["durability"])
}

func (suite *TransactionHandlerTestSuite) TestExportTransactions_CSV() {
	suite.mockTxnSvc.On("ListTransactions", mock.Anything, query.Filter{}, query.DefaultSort()).
		Return([]domain.Transaction{*sampleTxn()}, domain.SourceDatabase, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions/export", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment; filename=")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("Date,Description,Category,Type,Amount", strings.TrimSpace(lines[0]))
	suite.Equal("2024-03-05,Groceries,Food,expense,42.5", strings.TrimSpace(lines[1]))
}

func (suite *TransactionHandlerTestSuite) TestDashboardSummary() {
	suite.mockReportSvc.On("DashboardSummary", mock.Anything, time.Time{}, time.Time{}).
		Return(&domain.DashboardSummary{Source: domain.SourceMemory}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/dashboard/summary", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.DashboardSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.SourceMemory, resp.Source)
}

func (suite *TransactionHandlerTestSuite) TestDashboardSummary_BadDateRange() {
	w := suite.perform(http.MethodGet, "/api/v1/dashboard/summary?from=not-a-date", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportSvc.AssertNotCalled(suite.T(), "DashboardSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestSetBudget_ValidationError() {
	suite.mockBudgetSvc.On("SetBudget", mock.Anything, mock.Anything).
		Return(nil, domain.Durability(""), apperrors.ErrValidation).Once()

	w := suite.perform(http.MethodPut, "/api/v1/budgets", `{"category":"Gadgets","amount":"100"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListBudgets() {
	budget := domain.Budget{Category: domain.CategoryFood, Amount: decimal.RequireFromString("500")}
	suite.mockBudgetSvc.On("ListBudgets", mock.Anything).
		Return([]domain.Budget{budget}, domain.SourceDatabase, nil).Once()
	suite.mockBudgetSvc.On("TotalBudget", mock.Anything).
		Return(decimal.RequireFromString("500"), nil).Once()
	suite.mockReportSvc.On("BudgetOverview", mock.Anything).
		Return(&domain.BudgetOverview{TotalBudget: decimal.RequireFromString("500")}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/budgets", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBudgetsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Budgets, 1)
	suite.Equal(domain.CategoryFood, resp.Budgets[0].Category)
	suite.True(resp.TotalBudget.Equal(decimal.RequireFromString("500")))
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
