package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// ReportService assembles reports from stored transactions.
type ReportService struct {
	storage  *storage.Storage
	resolver *report.Resolver
}

// NewReportService creates a new ReportService using the wall clock.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store, resolver: report.NewResolver()}
}

// BuildReport resolves the requested period, reads the user's transactions
// in that range and aggregates them. Store failures are returned wrapped
// and no partial report is produced.
func (s *ReportService) BuildReport(ctx context.Context, req ReportRequest) (*Report, error) {
	period := report.ParsePeriod(req.Period)
	dateRange := s.resolver.Resolve(period, req.StartDate, req.EndDate)

	stopTimer := logging.GetLogData(ctx).AddTiming("fetchTransactionsMs")
	rows, err := s.storage.Transactions.ListForReport(ctx, &sqlconfig.ReportFilter{
		UserID:    req.UserID,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
	})
	stopTimer()
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	transactions, err := transactionsFromStorage(rows)
	if err != nil {
		return nil, err
	}

	categories, err := loadCategories(ctx, s.storage.Categories, transactions)
	if err != nil {
		return nil, err
	}

	return &Report{
		Transactions: transactions,
		Categories:   categories,
		Aggregates:   report.Aggregate(transactions, period, categories),
		Filters: ReportFilters{
			DateRange: dateRange,
			Period:    period,
		},
		Periods: report.PeriodOptions(),
	}, nil
}
