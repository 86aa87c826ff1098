package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator/actions"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	Body   TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	operator actionProcessor
	now      func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{operator: op, now: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records an income or expense against an active category of the same type.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the request into an action.
func parseCreateTransactionInput(input *CreateTransactionInput, now time.Time) (*actions.CreateTransaction, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	fields, err := parseTransactionBody(input.Body, now)
	if err != nil {
		return nil, err
	}
	return &actions.CreateTransaction{UserID: userID, TransactionFields: fields}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	action, err := parseCreateTransactionInput(input, h.now())
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	if err := validateAmounts(action.TransactionFields); err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", action.UserID.String())
	if err := h.operator.Process(ctx, action); err != nil {
		return nil, actionError(err, "failed to create transaction")
	}

	logData.AddData("transactionID", action.CreatedID.String())
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: action.CreatedID.String()},
	}, nil
}
