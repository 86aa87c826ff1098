package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/service"
	"github.com/carson-networks/report-server/internal/storage"
)

var _ IAction = (*DeleteCategory)(nil)

// DeleteCategory removes a category. Its subcategories become roots and its
// transactions become uncategorized.
type DeleteCategory struct {
	ID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", service.ErrCategoryNotFound, d.ID)
	}
	return writer.Categories.Delete(ctx, d.ID)
}
