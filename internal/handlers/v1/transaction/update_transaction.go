package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator/actions"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body   TransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	operator actionProcessor
	now      func() time.Time
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{operator: op, now: time.Now}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Replaces every field of one of the user's transactions. The current category may stay even if it was deactivated.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput, now time.Time) (*actions.UpdateTransaction, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, err
	}
	fields, err := parseTransactionBody(input.Body, now)
	if err != nil {
		return nil, err
	}
	return &actions.UpdateTransaction{ID: id, UserID: userID, TransactionFields: fields}, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	action, err := parseUpdateTransactionInput(input, h.now())
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	if err := validateAmounts(action.TransactionFields); err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", action.UserID.String())
	logData.AddData("transactionID", action.ID.String())
	if err := h.operator.Process(ctx, action); err != nil {
		return nil, actionError(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
