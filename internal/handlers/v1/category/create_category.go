package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator/actions"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	Body   CategoryBody
}

// CreateCategoryResponse is the API response model for a created category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a root category or a child of an existing root category.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateCategoryInput(input *CreateCategoryInput) (*actions.CreateCategory, error) {
	if _, err := parseUserID(input.UserID); err != nil {
		return nil, err
	}
	fields, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}
	return &actions.CreateCategory{
		Title:    fields.title,
		Type:     fields.kind,
		ParentID: fields.parentID,
		IsActive: fields.isActive,
	}, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	action, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.UserID)
	if err := h.operator.Process(ctx, action); err != nil {
		return nil, actionError(err, "failed to create category")
	}

	logData.AddData("categoryID", action.CreatedID.String())
	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: action.CreatedID.String()},
	}, nil
}
