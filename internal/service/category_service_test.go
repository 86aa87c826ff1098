package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *sqlconfig.MockICategoryTable) {
	t.Helper()
	categoryTable := sqlconfig.NewMockICategoryTable(t)
	return NewCategoryService(&storage.Storage{Categories: categoryTable}), categoryTable
}

func TestGetCategory(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	parentID := uuid.Must(uuid.NewV4())
	row := storageCategory("Rent", sqlconfig.CategoryTypeExpense, &parentID)
	categoryTable.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	category, err := svc.GetCategory(context.Background(), row.ID)
	require.NoError(t, err)

	assert.Equal(t, row.ID, category.ID)
	assert.Equal(t, "Rent", category.Title)
	assert.Equal(t, report.CategoryTypeExpense, category.Type)
	require.NotNil(t, category.ParentID)
	assert.Equal(t, parentID, *category.ParentID)
	assert.False(t, category.IsRoot())
}

func TestGetCategory_NotFound(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	id := uuid.Must(uuid.NewV4())
	categoryTable.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	category, err := svc.GetCategory(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, category)
}

func TestGetCategory_StoreError(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	categoryTable.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	category, err := svc.GetCategory(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorContains(t, err, "connection reset")
	assert.Nil(t, category)
}

func TestListCategories_Filters(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	expenseType := report.CategoryTypeExpense
	rows := []*sqlconfig.Category{
		storageCategory("Groceries", sqlconfig.CategoryTypeExpense, nil),
		storageCategory("Rent", sqlconfig.CategoryTypeExpense, nil),
	}
	categoryTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.CategoryFilter) bool {
		return f.Type != nil && *f.Type == sqlconfig.CategoryTypeExpense && f.ActiveOnly && !f.RootsOnly
	})).Return(rows, nil)

	categories, err := svc.ListCategories(context.Background(), CategoryFilter{Type: &expenseType, ActiveOnly: true})
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Groceries", categories[0].Title)
	assert.Equal(t, "Rent", categories[1].Title)
}

func TestListCategories_Empty(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	categoryTable.EXPECT().List(mock.Anything, &sqlconfig.CategoryFilter{}).Return(nil, nil)

	categories, err := svc.ListCategories(context.Background(), CategoryFilter{})

	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestListCategories_StoreError(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	categoryTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.ListCategories(context.Background(), CategoryFilter{})

	assert.ErrorContains(t, err, "list categories")
}

func TestListCategories_RootsOnly(t *testing.T) {
	svc, categoryTable := newCategoryTestService(t)

	categoryTable.EXPECT().List(mock.Anything, &sqlconfig.CategoryFilter{RootsOnly: true}).
		Return([]*sqlconfig.Category{storageCategory("Housing", sqlconfig.CategoryTypeExpense, nil)}, nil)

	categories, err := svc.ListCategories(context.Background(), CategoryFilter{RootsOnly: true})
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.True(t, categories[0].IsRoot())
}
