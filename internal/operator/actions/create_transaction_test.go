package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func newTestWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockITransactionTable, *sqlconfig.MockICategoryTable) {
	t.Helper()
	txTable := sqlconfig.NewMockITransactionTable(t)
	categoryTable := sqlconfig.NewMockICategoryTable(t)
	return &storage.Writer{Transactions: txTable, Categories: categoryTable}, txTable, categoryTable
}

func activeCategory(categoryType sqlconfig.CategoryType) *sqlconfig.Category {
	return &sqlconfig.Category{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    "Groceries",
		Type:     categoryType,
		IsActive: true,
	}
}

func expenseFields(categoryID uuid.UUID) TransactionFields {
	return TransactionFields{
		Title:      "Weekly shop",
		Type:       report.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("42.10"),
		Commission: decimal.RequireFromString("0.50"),
		CategoryID: categoryID,
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func newCreateTransaction(categoryID uuid.UUID) *CreateTransaction {
	return &CreateTransaction{
		UserID:            uuid.Must(uuid.NewV4()),
		TransactionFields: expenseFields(categoryID),
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	action := newCreateTransaction(category.ID)
	createdID := uuid.Must(uuid.NewV4())

	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	txTable.EXPECT().Insert(mock.Anything, &sqlconfig.TransactionCreate{
		UserID:     action.UserID,
		Title:      "Weekly shop",
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     action.Amount,
		Commission: action.Commission,
		CategoryID: uuid.NullUUID{UUID: category.ID, Valid: true},
		Date:       action.Date,
	}).Return(createdID, nil)

	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Equal(t, createdID, action.CreatedID)
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	action := newCreateTransaction(uuid.Must(uuid.NewV4()))

	categoryTable.EXPECT().FindByID(mock.Anything, action.CategoryID).Return(nil, nil)

	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestCreateTransaction_InactiveCategory(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	category.IsActive = false
	action := newCreateTransaction(category.ID)

	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrInactiveCategory)
}

func TestCreateTransaction_TypeMismatch(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	category := activeCategory(sqlconfig.CategoryTypeIncome)
	action := newCreateTransaction(category.ID)

	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryTypeMismatch)
}

func TestCreateTransaction_InsertError(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	action := newCreateTransaction(category.ID)

	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	txTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("insert failed"))

	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "insert failed")
	assert.Equal(t, uuid.Nil, action.CreatedID)
}
