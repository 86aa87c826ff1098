package service

import (
	"github.com/carson-networks/report-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Report      *ReportService
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Report:      NewReportService(store),
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
	}
}
