package transaction

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// Amounts are stored as NUMERIC(15, 2).
const amountScale = 2

var (
	minAmount = decimal.RequireFromString("0.01")
	maxAmount = decimal.RequireFromString("9999999999999.99")
)

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionBody is the request body for creating or updating a transaction.
type TransactionBody struct {
	Title      string `json:"title" required:"true" minLength:"1" maxLength:"255" doc:"Transaction title"`
	Type       string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount     string `json:"amount" required:"true" doc:"Decimal amount with at most two decimal places, at least 0.01"`
	Commission string `json:"commission,omitempty" doc:"Decimal commission with at most two decimal places, defaults to 0"`
	CategoryID string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Date       string `json:"date,omitempty" format:"date" doc:"Transaction date YYYY-MM-DD, defaults to today"`
}

// CreateTransactionResponse is the API response model for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Transaction UUID"`
}

func parseUserID(header string) (uuid.UUID, error) {
	userID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid X-User-ID: %w", err)
	}
	return userID, nil
}

// parseTransactionBody converts the request body into transaction fields.
// Dates default to today in the server's local time zone.
func parseTransactionBody(body TransactionBody, now time.Time) (actions.TransactionFields, error) {
	txType, err := report.ParseTransactionType(body.Type)
	if err != nil {
		return actions.TransactionFields{}, err
	}
	categoryID, err := uuid.FromString(body.CategoryID)
	if err != nil {
		return actions.TransactionFields{}, fmt.Errorf("invalid categoryID: %w", err)
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return actions.TransactionFields{}, fmt.Errorf("invalid amount: %w", err)
	}

	commission := decimal.Zero
	if body.Commission != "" {
		commission, err = decimal.NewFromString(body.Commission)
		if err != nil {
			return actions.TransactionFields{}, fmt.Errorf("invalid commission: %w", err)
		}
	}

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if body.Date != "" {
		date, err = time.Parse(report.DateLayout, body.Date)
		if err != nil {
			return actions.TransactionFields{}, fmt.Errorf("invalid date: %w", err)
		}
	}

	return actions.TransactionFields{
		Title:      body.Title,
		Type:       txType,
		Amount:     amount,
		Commission: commission,
		CategoryID: categoryID,
		Date:       date,
	}, nil
}

// validateAmounts rejects values the amount columns would round or overflow.
func validateAmounts(fields actions.TransactionFields) error {
	switch {
	case fields.Amount.LessThan(minAmount):
		return huma.NewError(http.StatusUnprocessableEntity, "amount must be at least 0.01")
	case fields.Amount.GreaterThan(maxAmount):
		return huma.NewError(http.StatusUnprocessableEntity, "amount is too large")
	case !fitsScale(fields.Amount):
		return huma.NewError(http.StatusUnprocessableEntity, "amount must have at most two decimal places")
	case fields.Commission.IsNegative():
		return huma.NewError(http.StatusUnprocessableEntity, "commission cannot be negative")
	case fields.Commission.GreaterThan(maxAmount):
		return huma.NewError(http.StatusUnprocessableEntity, "commission is too large")
	case !fitsScale(fields.Commission):
		return huma.NewError(http.StatusUnprocessableEntity, "commission must have at most two decimal places")
	}
	return nil
}

// fitsScale reports whether d has no significant digits past the stored
// scale. Trailing zeros such as 1.500 are accepted.
func fitsScale(d decimal.Decimal) bool {
	return d.Exponent() >= -amountScale || d.Equal(d.Truncate(amountScale))
}

// actionError maps operator failures to API errors.
func actionError(err error, failure string) error {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrInactiveCategory),
		errors.Is(err, service.ErrCategoryTypeMismatch):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
	}
	return huma.NewError(http.StatusInternalServerError, failure, err)
}
