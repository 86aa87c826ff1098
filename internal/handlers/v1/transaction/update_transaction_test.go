package transaction

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/service"
)

func TestParseUpdateTransactionInput(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Date = "2024-01-31"

	action, err := parseUpdateTransactionInput(&UpdateTransactionInput{
		UserID: userID.String(),
		ID:     id.String(),
		Body:   body,
	}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, id, action.ID)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), action.Date)
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		update, ok := action.(*actions.UpdateTransaction)
		return ok &&
			update.ID == id &&
			update.UserID == userID &&
			update.CategoryID == categoryID &&
			update.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Return(nil)

	resp := newTestAPI(t, mockOp).Put("/v1/transaction/"+id.String(), userHeader(userID), validBody(categoryID))

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_AmountRules(t *testing.T) {
	mockOp := new(mockActionProcessor)
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "3.333"

	resp := newTestAPI(t, mockOp).Put("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), userHeader(uuid.Must(uuid.NewV4())), body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_UpdateTransaction_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("%w: x", service.ErrTransactionNotFound), want: http.StatusNotFound},
		{name: "inactive category", err: fmt.Errorf("%w: Rent", service.ErrInactiveCategory), want: http.StatusUnprocessableEntity},
		{name: "type mismatch", err: fmt.Errorf("%w: Rent", service.ErrCategoryTypeMismatch), want: http.StatusUnprocessableEntity},
		{name: "storage", err: errors.New("deadlock detected"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOp := new(mockActionProcessor)
			mockOp.On("Process", mock.Anything, mock.Anything).Return(tt.err)

			resp := newTestAPI(t, mockOp).Put("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(),
				userHeader(uuid.Must(uuid.NewV4())), validBody(uuid.Must(uuid.NewV4())))

			assert.Equal(t, tt.want, resp.Code)
		})
	}
}

func TestHTTP_UpdateTransaction_InvalidID(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newTestAPI(t, mockOp).Put("/v1/transaction/42", userHeader(uuid.Must(uuid.NewV4())), validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, &actions.DeleteTransaction{ID: id, UserID: userID}).Return(nil)

	resp := newTestAPI(t, mockOp).Delete("/v1/transaction/"+id.String(), userHeader(userID))

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockOp).Delete("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteTransaction_MissingUser(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newTestAPI(t, mockOp).Delete("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
