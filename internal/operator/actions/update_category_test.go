package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func TestUpdateCategory_Rename(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	existing := activeCategory(sqlconfig.CategoryTypeExpense)
	action := &UpdateCategory{ID: existing.ID, Title: "Food", Type: report.CategoryTypeExpense}

	categoryTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().Update(mock.Anything, existing.ID, &sqlconfig.CategoryUpdate{
		Title: "Food",
		Type:  sqlconfig.CategoryTypeExpense,
	}).Return(nil)

	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateCategory_MoveUnderParent(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	existing := activeCategory(sqlconfig.CategoryTypeExpense)
	parent := activeCategory(sqlconfig.CategoryTypeExpense)
	action := &UpdateCategory{ID: existing.ID, Title: "Rent", Type: report.CategoryTypeExpense, ParentID: &parent.ID, IsActive: true}

	categoryTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().FindByID(mock.Anything, parent.ID).Return(parent, nil)
	categoryTable.EXPECT().List(mock.Anything, &sqlconfig.CategoryFilter{ParentID: &existing.ID}).Return(nil, nil)
	categoryTable.EXPECT().Update(mock.Anything, existing.ID, mock.MatchedBy(func(u *sqlconfig.CategoryUpdate) bool {
		return u.ParentID.Valid && u.ParentID.UUID == parent.ID && u.IsActive
	})).Return(nil)

	assert.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateCategory_NotFound(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	categoryTable.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	err := (&UpdateCategory{ID: id, Title: "Food"}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestUpdateCategory_OwnParent(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	existing := activeCategory(sqlconfig.CategoryTypeExpense)

	categoryTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

	err := (&UpdateCategory{ID: existing.ID, Type: report.CategoryTypeExpense, ParentID: &existing.ID}).
		Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrInvalidParentCategory)
}

func TestUpdateCategory_WithChildren(t *testing.T) {
	tests := []struct {
		name       string
		newType    report.CategoryType
		withParent bool
	}{
		{name: "takes a parent", newType: report.CategoryTypeExpense, withParent: true},
		{name: "changes type", newType: report.CategoryTypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, _, categoryTable := newTestWriter(t)
			existing := activeCategory(sqlconfig.CategoryTypeExpense)
			child := activeCategory(sqlconfig.CategoryTypeExpense)
			child.ParentID = uuid.NullUUID{UUID: existing.ID, Valid: true}
			action := &UpdateCategory{ID: existing.ID, Title: "Housing", Type: tt.newType}

			categoryTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
			if tt.withParent {
				parent := activeCategory(sqlconfig.CategoryTypeExpense)
				action.ParentID = &parent.ID
				categoryTable.EXPECT().FindByID(mock.Anything, parent.ID).Return(parent, nil)
			}
			categoryTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Category{child}, nil)

			err := action.Perform(context.Background(), writer)

			assert.ErrorIs(t, err, service.ErrCategoryHasChildren)
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	existing := activeCategory(sqlconfig.CategoryTypeExpense)

	categoryTable.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	categoryTable.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)

	assert.NoError(t, (&DeleteCategory{ID: existing.ID}).Perform(context.Background(), writer))
}

func TestDeleteCategory_NotFound(t *testing.T) {
	writer, _, categoryTable := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	categoryTable.EXPECT().FindByID(mock.Anything, id).Return(nil, nil)

	err := (&DeleteCategory{ID: id}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}
