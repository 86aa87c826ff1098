package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
)

// ReportRequest carries the raw report query of an authenticated user.
type ReportRequest struct {
	UserID    uuid.UUID
	Period    string
	StartDate string
	EndDate   string
}

// ReportFilters are the filters a report was actually computed with.
type ReportFilters struct {
	DateRange report.DateRange
	Period    report.Period
}

// Report is the assembled reporting payload.
type Report struct {
	// Transactions are ordered by date, newest first.
	Transactions []report.Transaction
	Categories   report.CategoryIndex
	report.Aggregates
	Filters ReportFilters
	Periods []report.Option
}
