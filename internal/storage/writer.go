package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// Writer groups the tables bound to a single database transaction.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Categories:   sqlconfig.NewCategoriesTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
