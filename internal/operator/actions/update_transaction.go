package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

var _ IAction = (*UpdateTransaction)(nil)

// UpdateTransaction replaces the fields of one of the user's transactions.
type UpdateTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	TransactionFields
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := findOwnedTransaction(ctx, writer, u.ID, u.UserID)
	if err != nil {
		return err
	}
	if err := checkCategory(ctx, writer, u.TransactionFields, existing.CategoryID); err != nil {
		return err
	}

	return writer.Transactions.Update(ctx, u.ID, &sqlconfig.TransactionUpdate{
		Title:      u.Title,
		Type:       sqlconfig.TransactionType(u.Type.String()),
		Amount:     u.Amount,
		Commission: u.Commission,
		CategoryID: uuid.NullUUID{UUID: u.CategoryID, Valid: true},
		Date:       u.Date,
	})
}
