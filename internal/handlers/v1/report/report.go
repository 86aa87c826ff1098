package report

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	domain "github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// Response models for GET /v1/report. Amounts are decimal strings with two
// fraction digits and dates use YYYY-MM-DD.

type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	Title        string `json:"title"`
	Type         string `json:"type" enum:"income,expense"`
	TypeLabel    string `json:"type_label"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Commission   string `json:"commission" doc:"Decimal commission"`
	CategoryID   string `json:"category_id,omitempty" doc:"Category UUID, absent when uncategorized"`
	CategoryName string `json:"category_name"`
	Date         string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
}

type Summary struct {
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	TotalCommission  string `json:"total_commission"`
	NetAmount        string `json:"net_amount"`
	TransactionCount int    `json:"transaction_count"`
	IncomeCount      int    `json:"income_count"`
	ExpenseCount     int    `json:"expense_count"`
}

type CategoryEntry struct {
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name"`
	ParentName   string `json:"parent_name,omitempty"`
	Type         string `json:"type" enum:"income,expense"`
	Amount       string `json:"amount"`
	Count        int    `json:"count"`
}

type CategoryGroups struct {
	Income  []CategoryEntry `json:"income"`
	Expense []CategoryEntry `json:"expense"`
}

type TrendPoint struct {
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	Income    string `json:"income"`
	Expense   string `json:"expense"`
	Net       string `json:"net"`
	Count     int    `json:"count"`
}

type Filters struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Period    string `json:"period"`
}

type PeriodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Report struct {
	Transactions      []Transaction  `json:"transactions"`
	Summary           Summary        `json:"summary"`
	CategoryBreakdown CategoryGroups `json:"categoryBreakdown"`
	Trends            []TrendPoint   `json:"trends"`
	TopCategories     CategoryGroups `json:"topCategories"`
	Filters           Filters        `json:"filters"`
	Periods           []PeriodOption `json:"periods"`
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatCategoryID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func reportFromService(r *service.Report) Report {
	transactions := make([]Transaction, 0, len(r.Transactions))
	for _, tx := range r.Transactions {
		name := domain.UncategorizedName
		if category, ok := r.Categories.Resolve(tx.CategoryID); ok {
			name = category.Title
		}
		transactions = append(transactions, Transaction{
			ID:           tx.ID.String(),
			Title:        tx.Title,
			Type:         tx.Type.String(),
			TypeLabel:    tx.Type.Label(),
			Amount:       formatAmount(tx.Amount),
			Commission:   formatAmount(tx.Commission),
			CategoryID:   formatCategoryID(tx.CategoryID),
			CategoryName: name,
			Date:         tx.Date.Format(domain.DateLayout),
		})
	}

	trends := make([]TrendPoint, 0, len(r.Trends))
	for _, point := range r.Trends {
		trends = append(trends, TrendPoint{
			Label:     point.Label,
			StartDate: point.Start.Format(domain.DateLayout),
			Income:    formatAmount(point.Income),
			Expense:   formatAmount(point.Expense),
			Net:       formatAmount(point.Net),
			Count:     point.Count,
		})
	}

	periods := make([]PeriodOption, 0, len(r.Periods))
	for _, option := range r.Periods {
		periods = append(periods, PeriodOption{Value: option.Value, Label: option.Label})
	}

	return Report{
		Transactions: transactions,
		Summary: Summary{
			TotalIncome:      formatAmount(r.Summary.TotalIncome),
			TotalExpense:     formatAmount(r.Summary.TotalExpense),
			TotalCommission:  formatAmount(r.Summary.TotalCommission),
			NetAmount:        formatAmount(r.Summary.NetAmount),
			TransactionCount: r.Summary.TransactionCount,
			IncomeCount:      r.Summary.IncomeCount,
			ExpenseCount:     r.Summary.ExpenseCount,
		},
		CategoryBreakdown: categoryGroups(r.Breakdown),
		Trends:            trends,
		TopCategories:     categoryGroups(r.TopCategories),
		Filters: Filters{
			StartDate: r.Filters.DateRange.Start.Format(domain.DateLayout),
			EndDate:   r.Filters.DateRange.End.Format(domain.DateLayout),
			Period:    r.Filters.Period.String(),
		},
		Periods: periods,
	}
}

func categoryGroups(totals domain.CategoryTotals) CategoryGroups {
	return CategoryGroups{
		Income:  categoryEntries(totals.Income),
		Expense: categoryEntries(totals.Expense),
	}
}

func categoryEntries(totals []domain.CategoryTotal) []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(totals))
	for _, total := range totals {
		entries = append(entries, CategoryEntry{
			CategoryID:   formatCategoryID(total.CategoryID),
			CategoryName: total.CategoryName,
			ParentName:   total.ParentName,
			Type:         total.Type.String(),
			Amount:       formatAmount(total.Amount),
			Count:        total.Count,
		})
	}
	return entries
}
