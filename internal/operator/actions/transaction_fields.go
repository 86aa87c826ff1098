package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// TransactionFields are the attributes a user sets when recording or
// editing a transaction.
type TransactionFields struct {
	Title      string
	Type       report.TransactionType
	Amount     decimal.Decimal
	Commission decimal.Decimal
	CategoryID uuid.UUID
	Date       time.Time
}

// checkCategory verifies the fields reference a category that can hold a
// transaction of their type. An inactive category is accepted only when it
// is current, the category the transaction already belongs to.
func checkCategory(ctx context.Context, writer *storage.Writer, fields TransactionFields, current uuid.NullUUID) error {
	category, err := writer.Categories.FindByID(ctx, fields.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: %s", service.ErrCategoryNotFound, fields.CategoryID)
	}
	if !category.IsActive && !(current.Valid && current.UUID == category.ID) {
		return fmt.Errorf("%w: %s", service.ErrInactiveCategory, category.Title)
	}
	if string(category.Type) != fields.Type.String() {
		return fmt.Errorf("%w: %s is %s", service.ErrCategoryTypeMismatch, category.Title, category.Type)
	}
	return nil
}

// findOwnedTransaction hides transactions of other users behind the same
// error as missing ones.
func findOwnedTransaction(ctx context.Context, writer *storage.Writer, id, userID uuid.UUID) (*sqlconfig.Transaction, error) {
	row, err := writer.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, fmt.Errorf("%w: %s", service.ErrTransactionNotFound, id)
	}
	return row, nil
}
