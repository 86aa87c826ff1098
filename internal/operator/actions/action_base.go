package actions

import (
	"context"

	"github.com/carson-networks/report-server/internal/storage"
)

// IAction is a unit of work performed inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
