package report

import (
	"bytes"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	// TopCategoryLimit is the number of categories kept per type in the top list.
	TopCategoryLimit = 5

	// UncategorizedName labels transactions whose category cannot be resolved.
	UncategorizedName = "Uncategorized"
)

// Summary holds the totals of a set of transactions.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	TotalCommission  decimal.Decimal
	NetAmount        decimal.Decimal
	TransactionCount int
	IncomeCount      int
	ExpenseCount     int
}

// CategoryTotal is the aggregate of one category's transactions of one type.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	ParentName   string
	Type         TransactionType
	Amount       decimal.Decimal
	Count        int
}

// CategoryTotals splits category aggregates by transaction type.
type CategoryTotals struct {
	Income  []CategoryTotal
	Expense []CategoryTotal
}

// TrendPoint is the aggregate of one trend bucket.
type TrendPoint struct {
	Label   string
	Start   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// Aggregates bundles every view computed over a report's transactions.
type Aggregates struct {
	Summary       Summary
	Breakdown     CategoryTotals
	Trends        []TrendPoint
	TopCategories CategoryTotals
}

// Aggregate computes all views over txs. The input slice is not modified.
func Aggregate(txs []Transaction, period Period, categories CategoryResolver) Aggregates {
	return Aggregates{
		Summary:       Summarize(txs),
		Breakdown:     Breakdown(txs, categories),
		Trends:        Trends(txs, period),
		TopCategories: TopCategories(txs, categories),
	}
}

// Summarize totals txs. NetAmount is the signed sum of amounts, which equals
// TotalIncome - TotalExpense exactly.
func Summarize(txs []Transaction) Summary {
	summary := Summary{
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
		TotalCommission: decimal.Zero,
		NetAmount:       decimal.Zero,
	}

	for _, tx := range txs {
		summary.TransactionCount++
		summary.TotalCommission = summary.TotalCommission.Add(tx.Commission)
		summary.NetAmount = summary.NetAmount.Add(tx.SignedAmount())
		switch tx.Type {
		case TransactionTypeIncome:
			summary.IncomeCount++
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case TransactionTypeExpense:
			summary.ExpenseCount++
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		}
	}

	return summary
}

// Breakdown groups txs by type and raw category id. Each list is sorted by
// category id ascending.
func Breakdown(txs []Transaction, categories CategoryResolver) CategoryTotals {
	byID := func(list []CategoryTotal) []CategoryTotal {
		sort.SliceStable(list, func(i, j int) bool {
			return bytes.Compare(list[i].CategoryID.Bytes(), list[j].CategoryID.Bytes()) < 0
		})
		return list
	}

	return CategoryTotals{
		Income:  byID(groupByCategory(txs, TransactionTypeIncome, categories).totals()),
		Expense: byID(groupByCategory(txs, TransactionTypeExpense, categories).totals()),
	}
}

// TopCategories ranks category groups by amount, largest first, and keeps at
// most TopCategoryLimit per type. Equal amounts keep the order in which their
// categories first appear in txs.
func TopCategories(txs []Transaction, categories CategoryResolver) CategoryTotals {
	top := func(list []CategoryTotal) []CategoryTotal {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Amount.GreaterThan(list[j].Amount)
		})
		if len(list) > TopCategoryLimit {
			list = list[:TopCategoryLimit]
		}
		return list
	}

	return CategoryTotals{
		Income:  top(groupByCategory(txs, TransactionTypeIncome, categories).totals()),
		Expense: top(groupByCategory(txs, TransactionTypeExpense, categories).totals()),
	}
}

// categoryGroups accumulates CategoryTotals keyed by category id while
// remembering the order in which ids were first seen.
type categoryGroups struct {
	order  []uuid.UUID
	groups map[uuid.UUID]*CategoryTotal
}

func groupByCategory(txs []Transaction, txType TransactionType, categories CategoryResolver) *categoryGroups {
	g := &categoryGroups{groups: make(map[uuid.UUID]*CategoryTotal)}

	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		group, ok := g.groups[tx.CategoryID]
		if !ok {
			name, parent := CategoryNames(tx.CategoryID, categories)
			group = &CategoryTotal{
				CategoryID:   tx.CategoryID,
				CategoryName: name,
				ParentName:   parent,
				Type:         txType,
				Amount:       decimal.Zero,
			}
			g.groups[tx.CategoryID] = group
			g.order = append(g.order, tx.CategoryID)
		}
		group.Amount = group.Amount.Add(tx.Amount)
		group.Count++
	}

	return g
}

// totals returns a fresh slice of the groups in first-seen order.
func (g *categoryGroups) totals() []CategoryTotal {
	list := make([]CategoryTotal, 0, len(g.order))
	for _, id := range g.order {
		list = append(list, *g.groups[id])
	}
	return list
}

// CategoryNames returns the title of the category and of its parent.
// Unresolvable ids name the Uncategorized bucket.
func CategoryNames(id uuid.UUID, categories CategoryResolver) (name string, parent string) {
	if id == uuid.Nil || categories == nil {
		return UncategorizedName, ""
	}
	category, ok := categories.Resolve(id)
	if !ok || category == nil {
		return UncategorizedName, ""
	}
	if category.ParentID != nil {
		if p, ok := categories.Resolve(*category.ParentID); ok && p != nil {
			parent = p.Title
		}
	}
	return category.Title, parent
}

// Trends buckets txs by the period's granularity. Only buckets holding at
// least one transaction are returned, oldest first. PeriodCustom has no
// bucketing and always yields an empty list.
func Trends(txs []Transaction, period Period) []TrendPoint {
	points := make([]TrendPoint, 0)
	if period == PeriodCustom {
		return points
	}

	index := make(map[string]int)
	for _, tx := range txs {
		start := bucketStart(tx.Date, period)
		key := start.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, TrendPoint{
				Label:   bucketLabel(start, period),
				Start:   start,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}

		point := &points[i]
		point.Count++
		switch tx.Type {
		case TransactionTypeIncome:
			point.Income = point.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			point.Expense = point.Expense.Add(tx.Amount)
		}
	}

	for i := range points {
		points[i].Net = points[i].Income.Sub(points[i].Expense)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})
	return points
}

// bucketStart returns the first day of the bucket holding date. Weekly
// buckets start on the Monday of the ISO week.
func bucketStart(date time.Time, period Period) time.Time {
	switch period {
	case PeriodDaily:
		return startOfDay(date)
	case PeriodWeekly:
		return startOfWeek(date)
	case PeriodAnnual:
		return startOfYear(date)
	default:
		return startOfMonth(date)
	}
}

func bucketLabel(start time.Time, period Period) string {
	switch period {
	case PeriodDaily:
		return start.Format(DateLayout)
	case PeriodWeekly:
		return start.Format("Jan 02")
	case PeriodAnnual:
		return start.Format("2006")
	default:
		return start.Format("Jan 2006")
	}
}
