package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func storedTransaction(userID, categoryID uuid.UUID) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     userID,
		Title:      "Old title",
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("1.00"),
		CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true},
	}
}

func TestUpdateTransaction_Success(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	existing := storedTransaction(userID, uuid.Must(uuid.NewV4()))
	action := &UpdateTransaction{ID: existing.ID, UserID: userID, TransactionFields: expenseFields(category.ID)}

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	txTable.EXPECT().Update(mock.Anything, existing.ID, &sqlconfig.TransactionUpdate{
		Title:      "Weekly shop",
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     action.Amount,
		Commission: action.Commission,
		CategoryID: uuid.NullUUID{UUID: category.ID, Valid: true},
		Date:       action.Date,
	}).Return(nil)

	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateTransaction_KeepsInactiveCurrentCategory(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	category.IsActive = false
	existing := storedTransaction(userID, category.ID)
	action := &UpdateTransaction{ID: existing.ID, UserID: userID, TransactionFields: expenseFields(category.ID)}

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
	txTable.EXPECT().Update(mock.Anything, existing.ID, mock.Anything).Return(nil)

	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateTransaction_RejectsInactiveNewCategory(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := activeCategory(sqlconfig.CategoryTypeExpense)
	category.IsActive = false
	existing := storedTransaction(userID, uuid.Must(uuid.NewV4()))
	action := &UpdateTransaction{ID: existing.ID, UserID: userID, TransactionFields: expenseFields(category.ID)}

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrInactiveCategory)
}

func TestUpdateTransaction_NotOwned(t *testing.T) {
	tests := []struct {
		name     string
		existing *sqlconfig.Transaction
	}{
		{name: "missing", existing: nil},
		{name: "other user", existing: storedTransaction(uuid.Must(uuid.NewV4()), uuid.Nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, txTable, _ := newTestWriter(t)
			id := uuid.Must(uuid.NewV4())
			action := &UpdateTransaction{ID: id, UserID: uuid.Must(uuid.NewV4()), TransactionFields: expenseFields(uuid.Nil)}

			txTable.EXPECT().FindByID(mock.Anything, id).Return(tt.existing, nil)

			err := action.Perform(context.Background(), writer)

			assert.ErrorIs(t, err, service.ErrTransactionNotFound)
		})
	}
}

func TestUpdateTransaction_TypeMismatch(t *testing.T) {
	writer, txTable, categoryTable := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	category := activeCategory(sqlconfig.CategoryTypeIncome)
	existing := storedTransaction(userID, category.ID)
	action := &UpdateTransaction{ID: existing.ID, UserID: userID, TransactionFields: expenseFields(category.ID)}

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryTypeMismatch)
}

func TestDeleteTransaction_Success(t *testing.T) {
	writer, txTable, _ := newTestWriter(t)
	userID := uuid.Must(uuid.NewV4())
	existing := storedTransaction(userID, uuid.Nil)

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	txTable.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)

	err := (&DeleteTransaction{ID: existing.ID, UserID: userID}).Perform(context.Background(), writer)

	assert.NoError(t, err)
}

func TestDeleteTransaction_OtherUser(t *testing.T) {
	writer, txTable, _ := newTestWriter(t)
	existing := storedTransaction(uuid.Must(uuid.NewV4()), uuid.Nil)

	txTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

	err := (&DeleteTransaction{ID: existing.ID, UserID: uuid.Must(uuid.NewV4())}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrTransactionNotFound)
}

func TestDeleteTransaction_LookupError(t *testing.T) {
	writer, txTable, _ := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	txTable.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("lookup failed"))

	err := (&DeleteTransaction{ID: id}).Perform(context.Background(), writer)

	assert.EqualError(t, err, "lookup failed")
}
