package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/storage"
)

var _ IAction = (*DeleteTransaction)(nil)

// DeleteTransaction removes one of the user's transactions.
type DeleteTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := findOwnedTransaction(ctx, writer, d.ID, d.UserID); err != nil {
		return err
	}
	return writer.Transactions.Delete(ctx, d.ID)
}
