package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Type       *report.CategoryType
	ActiveOnly bool
	RootsOnly  bool
}

// CategoryService handles category reads.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// GetCategory returns the category or nil when it does not exist.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*report.Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return CategoryFromStorage(row)
}

// ListCategories returns categories ordered by title.
func (s *CategoryService) ListCategories(ctx context.Context, filter CategoryFilter) ([]*report.Category, error) {
	storageFilter := &sqlconfig.CategoryFilter{
		ActiveOnly: filter.ActiveOnly,
		RootsOnly:  filter.RootsOnly,
	}
	if filter.Type != nil {
		categoryType := categoryTypeToStorage(*filter.Type)
		storageFilter.Type = &categoryType
	}

	rows, err := s.storage.Categories.List(ctx, storageFilter)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]*report.Category, 0, len(rows))
	for _, row := range rows {
		category, err := CategoryFromStorage(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
