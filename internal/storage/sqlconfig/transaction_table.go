package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const (
	transactionsTableName = "transactions"

	// dateLayout is sent as untyped text so postgres compares it as a DATE.
	dateLayout = "2006-01-02"
)

var transactionColumns = []any{
	"id", "user_id", "title", "type", "amount", "commission", "category_id", "date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable running queries on exec,
// which may be a database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTableName)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	columns := []string{"user_id", "title", "type", "amount", "commission", "category_id"}
	values := []any{create.UserID, create.Title, string(create.Type), create.Amount, create.Commission, create.CategoryID}
	if !create.Date.IsZero() {
		columns = append(columns, "date")
		values = append(values, create.Date.Format(dateLayout))
	}

	query := psql.Insert(
		im.Into(psql.Quote(transactionsTableName), columns...),
		im.Values(psql.Arg(values...)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// ListForReport returns the user's transactions dated inside the filter's
// range, ordered by date then id, both descending.
func (t *TransactionsTable) ListForReport(ctx context.Context, filter *ReportFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTableName)),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(filter.StartDate.Format(dateLayout)))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(filter.EndDate.Format(dateLayout)))),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions for report: %w", err)
	}
	return rows, nil
}

// Update overwrites the editable columns of a transaction.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	query := psql.Update(
		um.Table(psql.Quote(transactionsTableName)),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("commission").ToArg(update.Commission),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("date").ToArg(update.Date.Format(dateLayout)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}
	return nil
}

// Delete removes a transaction. Deleting a missing row is not an error.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(psql.Quote(transactionsTableName)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}

// List returns a page of the user's transactions ordered by date then id,
// both descending. Rows created after MaxCreationTime are skipped so later
// pages stay consistent with the first one.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTableName)),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}
