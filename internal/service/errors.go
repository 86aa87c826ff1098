package service

import "errors"

var (
	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInactiveCategory is returned when a transaction references a disabled category.
	ErrInactiveCategory = errors.New("category is not active")
	// ErrCategoryTypeMismatch is returned when a transaction and its category disagree on type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
	// ErrTransactionNotFound is returned when a transaction does not exist or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrCategoryHasChildren is returned when a change would break the children of a category.
	ErrCategoryHasChildren = errors.New("category has subcategories")
	// ErrInvalidParentCategory is returned when a parent is missing, nested, itself or of another type.
	ErrInvalidParentCategory = errors.New("invalid parent category")
)
