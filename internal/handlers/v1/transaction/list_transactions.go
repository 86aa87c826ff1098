package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// ListTransactionsCursor is the pagination cursor of a transaction listing.
// Following pages repeat all three values as query parameters.
type ListTransactionsCursor struct {
	Position     int    `json:"position" doc:"Offset of the next page"`
	Limit        int    `json:"limit" doc:"Page size"`
	MaxCreatedAt string `json:"maxCreatedAt" format:"date-time" doc:"Upper bound on creation time locked in by the first page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID       string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	Position     int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit        int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 10"`
	MaxCreatedAt string `query:"maxCreatedAt" doc:"Creation time bound from a previous cursor, RFC 3339"`
}

// Transaction is the API response model for a listed transaction.
type Transaction struct {
	ID                 string `json:"id" doc:"Transaction UUID"`
	Title              string `json:"title"`
	Type               string `json:"type" enum:"income,expense"`
	TypeLabel          string `json:"type_label"`
	Amount             string `json:"amount" doc:"Decimal amount"`
	Commission         string `json:"commission" doc:"Decimal commission"`
	CategoryID         string `json:"category_id,omitempty" doc:"Category UUID, absent when uncategorized"`
	CategoryName       string `json:"category_name"`
	ParentCategoryName string `json:"parent_category_name,omitempty"`
	Date               string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
}

// ListTransactionsResponse is the response body for listing transactions.
type ListTransactionsResponse struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest date first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
	Types        []report.Option         `json:"types" doc:"Every transaction type with its label"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponse
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, cursor *service.TransactionCursor) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	transactions transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{transactions: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns a page of the user's transactions, newest date first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns a nil cursor for the first page.
func parseListTransactionsInput(input *ListTransactionsInput) (uuid.UUID, *service.TransactionCursor, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if input.Position == 0 && input.Limit == 0 && input.MaxCreatedAt == "" {
		return userID, nil, nil
	}

	cursor := &service.TransactionCursor{Position: input.Position, Limit: input.Limit}
	if input.MaxCreatedAt != "" {
		cursor.MaxCreationTime, err = time.Parse(time.RFC3339Nano, input.MaxCreatedAt)
		if err != nil {
			return uuid.Nil, nil, err
		}
	}
	return userID, cursor, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, cursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	logData.AddData("userID", userID.String())

	stopTimer := logData.AddTiming("listTransactionsMs")
	page, err := h.transactions.ListTransactions(ctx, userID, cursor)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}
	logData.AddData("transactionCount", len(page.Transactions))

	resp := ListTransactionsResponse{
		Transactions: make([]Transaction, len(page.Transactions)),
		Types:        report.TransactionTypeOptions(),
	}
	for i, tx := range page.Transactions {
		name, parent := report.CategoryNames(tx.CategoryID, page.Categories)
		resp.Transactions[i] = Transaction{
			ID:                 tx.ID.String(),
			Title:              tx.Title,
			Type:               tx.Type.String(),
			TypeLabel:          tx.Type.Label(),
			Amount:             tx.Amount.StringFixed(amountScale),
			Commission:         tx.Commission.StringFixed(amountScale),
			CategoryName:       name,
			ParentCategoryName: parent,
			Date:               tx.Date.Format(report.DateLayout),
		}
		if tx.CategoryID != uuid.Nil {
			resp.Transactions[i].CategoryID = tx.CategoryID.String()
		}
	}

	if page.NextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:     page.NextCursor.Position,
			Limit:        page.NextCursor.Limit,
			MaxCreatedAt: page.NextCursor.MaxCreationTime.Format(time.RFC3339Nano),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
