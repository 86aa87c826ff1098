package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/report-server/internal/config"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// Storage exposes the tables read outside of write transactions and opens
// Writers for changes.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable

	exec bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
		exec:         exec,
	}, nil
}

// Ping verifies the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Write begins a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
