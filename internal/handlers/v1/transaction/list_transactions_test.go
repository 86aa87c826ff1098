package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *service.TransactionCursor) (*service.TransactionPage, error) {
	args := m.Called(ctx, userID, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransactionPage), args.Error(1)
}

func newListTestAPI(t *testing.T, lister transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(lister).Register(api)
	return api
}

func TestParseListTransactionsInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	gotUser, cursor, err := parseListTransactionsInput(&ListTransactionsInput{UserID: userID.String()})
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Nil(t, cursor, "first page has no cursor")

	_, cursor, err = parseListTransactionsInput(&ListTransactionsInput{
		UserID:       userID.String(),
		Position:     20,
		Limit:        10,
		MaxCreatedAt: "2024-03-13T18:30:00.5Z",
	})
	require.NoError(t, err)
	assert.Equal(t, &service.TransactionCursor{
		Position:        20,
		Limit:           10,
		MaxCreationTime: time.Date(2024, 3, 13, 18, 30, 0, 500000000, time.UTC),
	}, cursor)

	_, _, err = parseListTransactionsInput(&ListTransactionsInput{UserID: userID.String(), MaxCreatedAt: "yesterday"})
	assert.Error(t, err)
}

func TestHTTP_ListTransactions(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	housingID := uuid.Must(uuid.NewV4())
	rent := &report.Category{ID: uuid.Must(uuid.NewV4()), Title: "Rent", Type: report.CategoryTypeExpense, ParentID: &housingID}
	housing := &report.Category{ID: housingID, Title: "Housing", Type: report.CategoryTypeExpense}
	deletedID := uuid.Must(uuid.NewV4())
	page := &service.TransactionPage{
		Transactions: []report.Transaction{
			{ID: uuid.Must(uuid.NewV4()), Title: "March rent", Type: report.TransactionTypeExpense, Amount: decimal.RequireFromString("900"), CategoryID: rent.ID, Date: fixedNow},
			{ID: uuid.Must(uuid.NewV4()), Title: "Old gym", Type: report.TransactionTypeExpense, Amount: decimal.RequireFromString("30.5"), CategoryID: deletedID, Date: fixedNow},
		},
		Categories: report.NewCategoryIndex([]*report.Category{rent, housing}),
		NextCursor: &service.TransactionCursor{Position: 2, Limit: 2, MaxCreationTime: fixedNow},
	}
	mockLister := new(mockTransactionLister)
	mockLister.On("ListTransactions", mock.Anything, userID, (*service.TransactionCursor)(nil)).Return(page, nil)

	resp := newListTestAPI(t, mockLister).Get("/v1/transaction", userHeader(userID))

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "Rent", body.Transactions[0].CategoryName)
	assert.Equal(t, "Housing", body.Transactions[0].ParentCategoryName)
	assert.Equal(t, "900.00", body.Transactions[0].Amount)
	assert.Equal(t, "0.00", body.Transactions[0].Commission)
	assert.Equal(t, "2024-03-13", body.Transactions[0].Date)
	assert.Equal(t, report.UncategorizedName, body.Transactions[1].CategoryName)
	assert.Equal(t, deletedID.String(), body.Transactions[1].CategoryID)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, ListTransactionsCursor{Position: 2, Limit: 2, MaxCreatedAt: "2024-03-13T18:30:00Z"}, *body.NextCursor)
	assert.Equal(t, report.TransactionTypeOptions(), body.Types)
	mockLister.AssertExpectations(t)
}

func TestHTTP_ListTransactions_FollowsCursor(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockLister := new(mockTransactionLister)
	mockLister.On("ListTransactions", mock.Anything, userID, &service.TransactionCursor{
		Position:        2,
		Limit:           2,
		MaxCreationTime: fixedNow,
	}).Return(&service.TransactionPage{}, nil)

	resp := newListTestAPI(t, mockLister).Get("/v1/transaction?position=2&limit=2&maxCreatedAt=2024-03-13T18:30:00Z", userHeader(userID))

	require.Equal(t, http.StatusOK, resp.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["transactions"]))
	assert.NotContains(t, raw, "nextCursor")
	mockLister.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "limit too large", path: "/v1/transaction?limit=500", want: http.StatusUnprocessableEntity},
		{name: "negative position", path: "/v1/transaction?position=-1", want: http.StatusUnprocessableEntity},
		{name: "bad snapshot", path: "/v1/transaction?maxCreatedAt=soon", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLister := new(mockTransactionLister)

			resp := newListTestAPI(t, mockLister).Get(tt.path, userHeader(uuid.Must(uuid.NewV4())))

			assert.Equal(t, tt.want, resp.Code)
			mockLister.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockLister := new(mockTransactionLister)
	mockLister.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	resp := newListTestAPI(t, mockLister).Get("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
