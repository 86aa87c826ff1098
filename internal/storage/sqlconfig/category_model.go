package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// CategoryType is the stored value of the categories.type column.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID     `db:"id"`
	Title     string        `db:"title"`
	Type      CategoryType  `db:"type"`
	ParentID  uuid.NullUUID `db:"parent_id"`
	IsActive  bool          `db:"is_active"`
	CreatedAt time.Time     `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Title    string
	Type     CategoryType
	ParentID uuid.NullUUID
	IsActive bool
}

// CategoryUpdate replaces every editable column of a category.
type CategoryUpdate struct {
	Title    string
	Type     CategoryType
	ParentID uuid.NullUUID
	IsActive bool
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type       *CategoryType
	ParentID   *uuid.UUID // only direct children of this category
	ActiveOnly bool
	RootsOnly  bool
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	// FindByID returns nil without an error when the category does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindByIDs returns the categories that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error
	// Delete removes the category. Children and transactions lose the reference.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}
