package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/service"
)

// reportBuilder is the subset of the report service used by the handler.
type reportBuilder interface {
	BuildReport(ctx context.Context, req service.ReportRequest) (*service.Report, error)
}

// GetReportInput is the Huma input for fetching a report.
type GetReportInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	Period    string `query:"period" default:"monthly" doc:"daily, weekly, monthly, annual or custom. Unknown values fall back to monthly"`
	StartDate string `query:"start_date" doc:"Custom range start, YYYY-MM-DD"`
	EndDate   string `query:"end_date" doc:"Custom range end, YYYY-MM-DD"`
}

// GetReportOutput is the Huma output for fetching a report.
type GetReportOutput struct {
	Body Report
}

// GetReportHandler handles GET /v1/report.
type GetReportHandler struct {
	reports reportBuilder
}

// NewGetReportHandler creates a new GetReportHandler.
func NewGetReportHandler(reports reportBuilder) *GetReportHandler {
	return &GetReportHandler{reports: reports}
}

// Register registers the report endpoint with the Huma API.
func (h *GetReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "Get report",
		Description: "Aggregates the user's transactions over the requested period.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func parseGetReportInput(input *GetReportInput) (service.ReportRequest, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return service.ReportRequest{}, err
	}
	return service.ReportRequest{
		UserID:    userID,
		Period:    input.Period,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}, nil
}

func (h *GetReportHandler) handle(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	req, err := parseGetReportInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	logData := logging.GetLogData(ctx)
	stop := logData.AddTiming("buildReportMs")
	result, err := h.reports.BuildReport(ctx, req)
	stop()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build report", err)
	}

	logData.AddData("period", result.Filters.Period.String())
	logData.AddData("transactionCount", result.Summary.TransactionCount)
	return &GetReportOutput{Body: reportFromService(result)}, nil
}
