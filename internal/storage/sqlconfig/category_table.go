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

const categoriesTableName = "categories"

var categoryColumns = []any{"id", "title", "type", "parent_id", "is_active", "created_at"}

// Ensure CategoriesTable implements ICategoryTable at compile time.
var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable running queries on exec.
func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote(categoriesTableName)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	return row, nil
}

// FindByIDs retrieves every existing category among ids in a single query.
func (t *CategoriesTable) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote(categoriesTableName)),
		sm.Where(psql.Quote("id").In(psql.Arg(args...))),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Category]())
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	return rows, nil
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(psql.Quote(categoriesTableName), "title", "type", "parent_id", "is_active"),
		im.Values(psql.Arg(create.Title, string(create.Type), create.ParentID, create.IsActive)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// Update overwrites the editable columns of a category.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error {
	query := psql.Update(
		um.Table(psql.Quote(categoriesTableName)),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("parent_id").ToArg(update.ParentID),
		um.SetCol("is_active").ToArg(update.IsActive),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("update category %s: %w", id, err)
	}
	return nil
}

// Delete removes a category. The schema nulls out references to it.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(psql.Quote(categoriesTableName)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

// List returns categories matching the filter ordered by title. Nil filter returns all.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote(categoriesTableName)),
	}
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
		}
		if filter.ActiveOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))))
		}
		if filter.ParentID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("parent_id").EQ(psql.Arg(*filter.ParentID))))
		}
		if filter.RootsOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("parent_id").IsNull()))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("title")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Category]())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}
