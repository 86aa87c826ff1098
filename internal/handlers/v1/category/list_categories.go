package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	Type   string `query:"type" enum:"income,expense" doc:"Only categories of this type"`
	Active bool   `query:"active" doc:"Only active categories"`
	Roots  bool   `query:"roots" doc:"Only root categories, the valid parents for a new category"`
}

// ListCategoriesResponse is the API response model for a category listing.
type ListCategoriesResponse struct {
	Categories []Category      `json:"categories"`
	Types      []report.Option `json:"types" doc:"Every category type with its label"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	categories categoryReader
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(categories categoryReader) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Lists categories ordered by title.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseListCategoriesInput(input *ListCategoriesInput) (service.CategoryFilter, error) {
	if _, err := parseUserID(input.UserID); err != nil {
		return service.CategoryFilter{}, err
	}
	filter := service.CategoryFilter{ActiveOnly: input.Active, RootsOnly: input.Roots}
	if input.Type != "" {
		categoryType, err := report.ParseCategoryType(input.Type)
		if err != nil {
			return service.CategoryFilter{}, err
		}
		filter.Type = &categoryType
	}
	return filter, nil
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	filter, err := parseListCategoriesInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.UserID)

	categories, err := h.categories.ListCategories(ctx, filter)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}
	logData.AddData("categoryCount", len(categories))

	out := &ListCategoriesOutput{Body: ListCategoriesResponse{
		Categories: make([]Category, 0, len(categories)),
		Types:      report.CategoryTypeOptions(),
	}}
	for _, c := range categories {
		out.Body.Categories = append(out.Body.Categories, categoryFromDomain(c))
	}
	return out, nil
}
