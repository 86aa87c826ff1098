package report

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Option is a value/label pair used by clients to render select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TransactionType is the direction of a transaction.
type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

var transactionTypes = []TransactionType{TransactionTypeIncome, TransactionTypeExpense}

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeIncome:
		return "income"
	case TransactionTypeExpense:
		return "expense"
	}
	return fmt.Sprintf("TransactionType(%d)", int8(t))
}

// Label returns the display label of the type.
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeIncome:
		return "Income"
	case TransactionTypeExpense:
		return "Expense"
	}
	return t.String()
}

// Multiplier is the sign a transaction of this type contributes to a balance.
func (t TransactionType) Multiplier() int64 {
	if t == TransactionTypeExpense {
		return -1
	}
	return 1
}

// ParseTransactionType parses "income" or "expense".
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range transactionTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("report: unknown transaction type %q", s)
}

// TransactionTypeOptions lists every transaction type with its label.
func TransactionTypeOptions() []Option {
	options := make([]Option, len(transactionTypes))
	for i, t := range transactionTypes {
		options[i] = Option{Value: t.String(), Label: t.Label()}
	}
	return options
}

// CategoryType is the kind of transactions a category is meant for.
type CategoryType int8

const (
	CategoryTypeIncome CategoryType = iota
	CategoryTypeExpense
)

var categoryTypes = []CategoryType{CategoryTypeIncome, CategoryTypeExpense}

func (t CategoryType) String() string {
	switch t {
	case CategoryTypeIncome:
		return "income"
	case CategoryTypeExpense:
		return "expense"
	}
	return fmt.Sprintf("CategoryType(%d)", int8(t))
}

// Label returns the display label of the type.
func (t CategoryType) Label() string {
	switch t {
	case CategoryTypeIncome:
		return "Income"
	case CategoryTypeExpense:
		return "Expense"
	}
	return t.String()
}

// ParseCategoryType parses "income" or "expense".
func ParseCategoryType(s string) (CategoryType, error) {
	for _, t := range categoryTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("report: unknown category type %q", s)
}

// CategoryTypeOptions lists every category type with its label.
func CategoryTypeOptions() []Option {
	options := make([]Option, len(categoryTypes))
	for i, t := range categoryTypes {
		options[i] = Option{Value: t.String(), Label: t.Label()}
	}
	return options
}

// Transaction is a single income or expense record owned by a user.
// A nil CategoryID means the transaction has no category.
type Transaction struct {
	ID         uuid.UUID
	Title      string
	Type       TransactionType
	Amount     decimal.Decimal
	Commission decimal.Decimal
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
}

// SignedAmount is the amount with the sign of its type: positive for
// income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(t.Type.Multiplier()))
}

// Category is a node of the one level category hierarchy.
type Category struct {
	ID       uuid.UUID
	Title    string
	Type     CategoryType
	ParentID *uuid.UUID
	IsActive bool
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryResolver looks up category metadata by id. Missing categories
// are reported with ok == false and never as an error.
type CategoryResolver interface {
	Resolve(id uuid.UUID) (category *Category, ok bool)
}

// CategoryIndex is a CategoryResolver backed by a map.
type CategoryIndex map[uuid.UUID]*Category

// NewCategoryIndex indexes the given categories by id.
func NewCategoryIndex(categories []*Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, c := range categories {
		if c != nil {
			index[c.ID] = c
		}
	}
	return index
}

func (idx CategoryIndex) Resolve(id uuid.UUID) (*Category, bool) {
	c, ok := idx[id]
	return c, ok
}
