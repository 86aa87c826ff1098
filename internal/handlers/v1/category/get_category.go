package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
)

// GetCategoryInput is the Huma input for reading a category.
type GetCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

// CategoryDetail is a category together with its parent's title.
type CategoryDetail struct {
	Category
	ParentTitle string `json:"parent_title,omitempty" doc:"Title of the parent category"`
}

// GetCategoryOutput is the Huma output for reading a category.
type GetCategoryOutput struct {
	Body CategoryDetail
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	categories categoryReader
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(categories categoryReader) *GetCategoryHandler {
	return &GetCategoryHandler{categories: categories}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
	if _, err := parseUserID(input.UserID); err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}
	logging.GetLogData(ctx).AddData("categoryID", id.String())

	category, err := h.categories.GetCategory(ctx, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get category", err)
	}
	if category == nil {
		return nil, huma.Error404NotFound("category not found")
	}

	detail := CategoryDetail{Category: categoryFromDomain(category)}
	if category.ParentID != nil {
		parent, err := h.categories.GetCategory(ctx, *category.ParentID)
		if err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to get parent category", err)
		}
		if parent != nil {
			detail.ParentTitle = parent.Title
		}
	}
	return &GetCategoryOutput{Body: detail}, nil
}
