package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/fintrackr/finance_tracker_app/internal/core/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock SnapshotCache ---
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context, key string, dest any) bool {
	args := m.Called(ctx, key, dest)
	return args.Bool(0)
}

func (m *MockSnapshotCache) Set(ctx context.Context, key string, value any) {
	m.Called(ctx, key, value)
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

func createReq(amount, typ, description, category, date string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString(amount),
		Type:        domain.TransactionType(typ),
		Description: description,
		Category:    domain.Category(category),
		Date:        date,
	}
}

var errDatabaseDown = errors.New("connection refused")

func mustDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date.UTC()
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo, nil)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := createReq("42.50", "expense", "Groceries", "Food", "2024-03-05")

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID != "" &&
			t.Amount.Equal(req.Amount) &&
			t.Type == domain.Expense &&
			t.Description == "Groceries" &&
			t.Category == domain.CategoryFood &&
			t.Date.Format("2006-01-02") == "2024-03-05"
	})).Return(nil).Once()

	txn, durability, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.DurabilityPersisted, durability)
	suite.NotEmpty(txn.TransactionID)
	suite.False(txn.CreatedAt.IsZero())
	suite.Equal(txn.CreatedAt, txn.UpdatedAt)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationFailsBeforePersistence() {
	ctx := context.Background()

	cases := []dto.CreateTransactionRequest{
		createReq("-5", "expense", "Negative", "Food", "2024-03-05"),
		createReq("10", "transfer", "Unknown type", "Food", "2024-03-05"),
		createReq("10", "expense", "Bad category", "Gadgets", "2024-03-05"),
		createReq("10", "expense", "Bad date", "Food", "05-03-2024"),
	}

	for _, req := range cases {
		txn, _, err := suite.service.CreateTransaction(ctx, req)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(txn)
	}

	// The repository must never see an invalid record.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DegradesToMemoryOnly() {
	ctx := context.Background()
	req := createReq("42.50", "expense", "Groceries", "Food", "2024-03-05")

	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()

	txn, durability, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DurabilityMemoryOnly, durability)

	// The record must still be readable from the in-memory replica.
	suite.mockRepo.On("FindTransactions", ctx).Return(nil, errDatabaseDown).Once()
	listed, source, err := suite.service.ListTransactions(ctx, query.Filter{}, query.DefaultSort())
	suite.Require().NoError(err)
	suite.Equal(domain.SourceMemory, source)
	suite.Require().Len(listed, 1)
	suite.Equal(txn.TransactionID, listed[0].TransactionID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersAndSorts() {
	ctx := context.Background()
	stored := []domain.Transaction{
		{TransactionID: "a", Amount: decimal.RequireFromString("10"), Type: domain.Expense, Description: "Lunch", Category: domain.CategoryFood, Date: mustDate("2024-03-01")},
		{TransactionID: "b", Amount: decimal.RequireFromString("900"), Type: domain.Income, Description: "Salary", Category: domain.CategorySalary, Date: mustDate("2024-03-02")},
		{TransactionID: "c", Amount: decimal.RequireFromString("25"), Type: domain.Expense, Description: "Dinner", Category: domain.CategoryFood, Date: mustDate("2024-03-03")},
	}
	suite.mockRepo.On("FindTransactions", ctx).Return(stored, nil).Once()

	listed, source, err := suite.service.ListTransactions(ctx, query.Filter{Category: domain.CategoryFood}, query.DefaultSort())

	suite.Require().NoError(err)
	suite.Equal(domain.SourceDatabase, source)
	suite.Require().Len(listed, 2)
	// date desc
	suite.Equal("c", listed[0].TransactionID)
	suite.Equal("a", listed[1].TransactionID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NormalizesLoadedRecords() {
	ctx := context.Background()
	stored := []domain.Transaction{
		{TransactionID: "a", Amount: decimal.RequireFromString("10"), Type: domain.Expense, Description: "Imported", Category: domain.Category("Misc"), Date: mustDate("2024-03-01").Add(13 * time.Hour)},
	}
	suite.mockRepo.On("FindTransactions", ctx).Return(stored, nil).Once()

	listed, _, err := suite.service.ListTransactions(ctx, query.Filter{}, query.DefaultSort())

	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(domain.CategoryOther, listed[0].Category)
	suite.Equal(mustDate("2024-03-01"), listed[0].Date)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_FallsBackToReplica() {
	ctx := context.Background()
	req := createReq("42.50", "expense", "Groceries", "Food", "2024-03-05")
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()
	created, _, err := suite.service.CreateTransaction(ctx, req)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindTransactionByID", ctx, created.TransactionID).Return(nil, errDatabaseDown).Once()

	txn, err := suite.service.GetTransactionByID(ctx, created.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(created.TransactionID, txn.TransactionID)
	suite.True(txn.Amount.Equal(created.Amount))
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	stored := domain.Transaction{
		TransactionID: "t1",
		Amount:        decimal.RequireFromString("10"),
		Type:          domain.Expense,
		Description:   "Lunch",
		Category:      domain.CategoryFood,
		Date:          mustDate("2024-03-01"),
		AuditFields:   domain.AuditFields{CreatedAt: mustDate("2024-02-01"), UpdatedAt: mustDate("2024-02-01")},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "t1").Return(&stored, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == "t1" && t.Description == "Team lunch" && t.Amount.Equal(decimal.RequireFromString("18"))
	})).Return(nil).Once()

	req := createReq("18", "expense", "Team lunch", "Food", "2024-03-01")
	txn, durability, err := suite.service.UpdateTransaction(ctx, "t1", req)

	suite.Require().NoError(err)
	suite.Equal(domain.DurabilityPersisted, durability)
	suite.Equal("Team lunch", txn.Description)
	// CreatedAt survives a full-record update.
	suite.Equal(stored.CreatedAt, txn.CreatedAt)
	suite.True(txn.UpdatedAt.After(txn.CreatedAt))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	req := createReq("18", "expense", "Team lunch", "Food", "2024-03-01")
	txn, _, err := suite.service.UpdateTransaction(ctx, "missing", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_UnknownIDWithDatabaseDown() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, "missing").Return(nil, errDatabaseDown).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()

	req := createReq("18", "expense", "Team lunch", "Food", "2024-03-01")
	txn, _, err := suite.service.UpdateTransaction(ctx, "missing", req)

	// An ID the replica has never seen cannot be silently created by an update.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DegradesToMemoryOnly() {
	ctx := context.Background()
	req := createReq("42.50", "expense", "Groceries", "Food", "2024-03-05")
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()
	created, _, err := suite.service.CreateTransaction(ctx, req)
	suite.Require().NoError(err)

	suite.mockRepo.On("UpdateTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()

	update := createReq("50", "expense", "Groceries and snacks", "Food", "2024-03-05")
	txn, durability, err := suite.service.UpdateTransaction(ctx, created.TransactionID, update)

	suite.Require().NoError(err)
	suite.Equal(domain.DurabilityMemoryOnly, durability)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("50")))

	// The replica reflects the update.
	suite.mockRepo.On("FindTransactionByID", ctx, created.TransactionID).Return(nil, errDatabaseDown).Once()
	stored, err := suite.service.GetTransactionByID(ctx, created.TransactionID)
	suite.Require().NoError(err)
	suite.Equal("Groceries and snacks", stored.Description)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteTransaction", ctx, "t1").Return(nil).Once()

	durability, err := suite.service.DeleteTransaction(ctx, "t1")

	suite.Require().NoError(err)
	suite.Equal(domain.DurabilityPersisted, durability)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteTransaction", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.DeleteTransaction(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_DegradesToMemoryOnly() {
	ctx := context.Background()
	req := createReq("42.50", "expense", "Groceries", "Food", "2024-03-05")
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(errDatabaseDown).Once()
	created, _, err := suite.service.CreateTransaction(ctx, req)
	suite.Require().NoError(err)

	suite.mockRepo.On("DeleteTransaction", ctx, created.TransactionID).Return(errDatabaseDown).Once()

	durability, err := suite.service.DeleteTransaction(ctx, created.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(domain.DurabilityMemoryOnly, durability)

	// The record is gone from the replica.
	suite.mockRepo.On("FindTransactions", ctx).Return(nil, errDatabaseDown).Once()
	listed, _, err := suite.service.ListTransactions(ctx, query.Filter{}, query.DefaultSort())
	suite.Require().NoError(err)
	suite.Empty(listed)
}

func (suite *TransactionServiceTestSuite) TestMutationsInvalidateCache() {
	ctx := context.Background()
	mockCache := new(MockSnapshotCache)
	service := services.NewTransactionService(suite.mockRepo, mockCache)

	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()
	mockCache.On("Invalidate", ctx).Return().Once()

	_, _, err := service.CreateTransaction(ctx, createReq("42.50", "expense", "Groceries", "Food", "2024-03-05"))

	suite.Require().NoError(err)
	mockCache.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
