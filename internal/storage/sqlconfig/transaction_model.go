package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the stored value of the transactions.type column.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	Title      string          `db:"title"`
	Type       TransactionType `db:"type"`
	Amount     decimal.Decimal `db:"amount"`
	Commission decimal.Decimal `db:"commission"`
	CategoryID uuid.NullUUID   `db:"category_id"`
	Date       time.Time       `db:"date"`
	CreatedAt  time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID     uuid.UUID
	Title      string
	Type       TransactionType
	Amount     decimal.Decimal
	Commission decimal.Decimal
	CategoryID uuid.NullUUID
	Date       time.Time // defaults to the current date if zero
}

// TransactionUpdate replaces every editable column of a transaction.
type TransactionUpdate struct {
	Title      string
	Type       TransactionType
	Amount     decimal.Decimal
	Commission decimal.Decimal
	CategoryID uuid.NullUUID
	Date       time.Time
}

// TransactionFilter specifies filters and pagination for listing transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	MaxCreationTime *time.Time
	Limit           int
	Offset          int
}

// ReportFilter selects a user's transactions within an inclusive date range.
type ReportFilter struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// FindByID returns nil without an error when the transaction does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns up to Limit+1 rows so callers can tell whether another page exists.
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// ListForReport returns the filtered transactions, newest date first.
	ListForReport(ctx context.Context, filter *ReportFilter) ([]*Transaction, error)
}
