package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func transactionsFromStorage(rows []*sqlconfig.Transaction) ([]report.Transaction, error) {
	transactions := make([]report.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := transactionFromStorage(row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// loadCategories fetches the categories referenced by transactions together
// with their parents. Ids without a stored category are simply absent.
func loadCategories(ctx context.Context, categories sqlconfig.ICategoryTable, transactions []report.Transaction) (report.CategoryIndex, error) {
	index := report.CategoryIndex{}
	logData := logging.GetLogData(ctx)

	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, tx := range transactions {
		if tx.CategoryID == uuid.Nil || seen[tx.CategoryID] {
			continue
		}
		seen[tx.CategoryID] = true
		ids = append(ids, tx.CategoryID)
	}

	// Second round fetches parents that were not referenced directly.
	for round := 0; round < 2 && len(ids) > 0; round++ {
		stopTimer := logData.AddToExistingTiming("fetchCategoriesMs")
		rows, err := categories.FindByIDs(ctx, ids)
		stopTimer()
		if err != nil {
			return nil, fmt.Errorf("fetch categories: %w", err)
		}

		ids = nil
		for _, row := range rows {
			category, err := CategoryFromStorage(row)
			if err != nil {
				return nil, err
			}
			index[category.ID] = category
			if category.ParentID != nil && !seen[*category.ParentID] {
				seen[*category.ParentID] = true
				ids = append(ids, *category.ParentID)
			}
		}
	}

	logData.AddData("categoryCount", len(index))
	return index, nil
}
