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

var _ IAction = (*CreateCategory)(nil)

// CreateCategory adds a category. A parent, when given, must be an existing
// root category of the same type.
type CreateCategory struct {
	Title    string
	Type     report.CategoryType
	ParentID *uuid.UUID
	IsActive bool

	CreatedID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	parentID, err := resolveParent(ctx, writer, c.ParentID, c.Type)
	if err != nil {
		return err
	}

	id, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		Title:    c.Title,
		Type:     sqlconfig.CategoryType(c.Type.String()),
		ParentID: parentID,
		IsActive: c.IsActive,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

// resolveParent checks that parentID names a root category of categoryType.
// A nil parentID resolves to no parent.
func resolveParent(ctx context.Context, writer *storage.Writer, parentID *uuid.UUID, categoryType report.CategoryType) (uuid.NullUUID, error) {
	if parentID == nil {
		return uuid.NullUUID{}, nil
	}

	row, err := writer.Categories.FindByID(ctx, *parentID)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	if row == nil {
		return uuid.NullUUID{}, fmt.Errorf("%w: %s does not exist", service.ErrInvalidParentCategory, *parentID)
	}
	parent, err := service.CategoryFromStorage(row)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	switch {
	case !parent.IsRoot():
		return uuid.NullUUID{}, fmt.Errorf("%w: %s is not a root category", service.ErrInvalidParentCategory, parent.Title)
	case parent.Type != categoryType:
		return uuid.NullUUID{}, fmt.Errorf("%w: %s is %s", service.ErrInvalidParentCategory, parent.Title, parent.Type)
	}
	return uuid.NullUUID{UUID: parent.ID, Valid: true}, nil
}
