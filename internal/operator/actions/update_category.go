package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

var _ IAction = (*UpdateCategory)(nil)

// UpdateCategory replaces the fields of a category. The hierarchy stays two
// levels deep: a category with subcategories can neither take a parent nor
// change its type.
type UpdateCategory struct {
	ID       uuid.UUID
	Title    string
	Type     report.CategoryType
	ParentID *uuid.UUID
	IsActive bool
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", service.ErrCategoryNotFound, u.ID)
	}

	if u.ParentID != nil && *u.ParentID == u.ID {
		return fmt.Errorf("%w: %s cannot be its own parent", service.ErrInvalidParentCategory, existing.Title)
	}
	parentID, err := resolveParent(ctx, writer, u.ParentID, u.Type)
	if err != nil {
		return err
	}

	newType := sqlconfig.CategoryType(u.Type.String())
	if parentID.Valid || newType != existing.Type {
		children, err := writer.Categories.List(ctx, &sqlconfig.CategoryFilter{ParentID: &u.ID})
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return fmt.Errorf("%w: %s", service.ErrCategoryHasChildren, existing.Title)
		}
	}

	return writer.Categories.Update(ctx, u.ID, &sqlconfig.CategoryUpdate{
		Title:    u.Title,
		Type:     newType,
		ParentID: parentID,
		IsActive: u.IsActive,
	})
}
