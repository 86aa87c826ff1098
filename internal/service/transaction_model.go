package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func transactionFromStorage(row *sqlconfig.Transaction) (report.Transaction, error) {
	txType, err := report.ParseTransactionType(string(row.Type))
	if err != nil {
		return report.Transaction{}, fmt.Errorf("transaction %s: %w", row.ID, err)
	}

	categoryID := uuid.Nil
	if row.CategoryID.Valid {
		categoryID = row.CategoryID.UUID
	}

	return report.Transaction{
		ID:         row.ID,
		Title:      row.Title,
		Type:       txType,
		Amount:     row.Amount,
		Commission: row.Commission,
		CategoryID: categoryID,
		UserID:     row.UserID,
		Date:       row.Date,
	}, nil
}

// CategoryFromStorage converts a stored category row into its domain form.
func CategoryFromStorage(row *sqlconfig.Category) (*report.Category, error) {
	categoryType, err := report.ParseCategoryType(string(row.Type))
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", row.ID, err)
	}

	category := &report.Category{
		ID:       row.ID,
		Title:    row.Title,
		Type:     categoryType,
		IsActive: row.IsActive,
	}
	if row.ParentID.Valid {
		parentID := row.ParentID.UUID
		category.ParentID = &parentID
	}
	return category, nil
}

func categoryTypeToStorage(t report.CategoryType) sqlconfig.CategoryType {
	return sqlconfig.CategoryType(t.String())
}

// TransactionCursor positions a page of a user's transaction listing.
// MaxCreationTime is fixed by the first page so rows inserted later do not
// shift the offsets of the following pages.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionPage is one page of a transaction listing together with the
// categories its rows reference.
type TransactionPage struct {
	Transactions []report.Transaction
	Categories   report.CategoryIndex
	NextCursor   *TransactionCursor
}
