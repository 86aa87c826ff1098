package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

const defaultLimit = 10

// TransactionService handles transaction reads.
type TransactionService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store, now: time.Now}
}

// ListTransactions returns a page of the user's transactions, newest date
// first, using offset pagination. A nil cursor starts at the first page with
// the default limit.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) (*TransactionPage, error) {
	limit := defaultLimit
	offset := 0
	maxCreationTime := s.now().UTC()
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = cursor.MaxCreationTime
		}
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("fetchTransactionsMs")
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:          userID,
		MaxCreationTime: &maxCreationTime,
		Limit:           limit,
		Offset:          offset,
	})
	stopTimer()
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: maxCreationTime,
		}
	}

	transactions, err := transactionsFromStorage(rows)
	if err != nil {
		return nil, err
	}

	categories, err := loadCategories(ctx, s.storage.Categories, transactions)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Transactions: transactions,
		Categories:   categories,
		NextCursor:   nextCursor,
	}, nil
}
