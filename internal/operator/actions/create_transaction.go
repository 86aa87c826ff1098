package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

var _ IAction = (*CreateTransaction)(nil)

// CreateTransaction records a transaction for a user against an active
// category of the same type. CreatedID is set once Perform succeeds.
type CreateTransaction struct {
	UserID uuid.UUID
	TransactionFields

	CreatedID uuid.UUID
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := checkCategory(ctx, writer, c.TransactionFields, uuid.NullUUID{}); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:     c.UserID,
		Title:      c.Title,
		Type:       sqlconfig.TransactionType(c.Type.String()),
		Amount:     c.Amount,
		Commission: c.Commission,
		CategoryID: uuid.NullUUID{UUID: c.CategoryID, Valid: true},
		Date:       c.Date,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
