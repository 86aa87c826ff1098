package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator/actions"
)

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
	Body   CategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Status int
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	operator actionProcessor
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(op actionProcessor) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{operator: op}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-category",
		Method:        http.MethodPut,
		Path:          "/v1/category/{id}",
		Summary:       "Update category",
		Description:   "Replaces every field of a category. Categories with subcategories keep their type and stay roots.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) (*actions.UpdateCategory, error) {
	if _, err := parseUserID(input.UserID); err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, err
	}
	fields, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}
	return &actions.UpdateCategory{
		ID:       id,
		Title:    fields.title,
		Type:     fields.kind,
		ParentID: fields.parentID,
		IsActive: fields.isActive,
	}, nil
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	action, err := parseUpdateCategoryInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.UserID)
	logData.AddData("categoryID", action.ID.String())
	if err := h.operator.Process(ctx, action); err != nil {
		return nil, actionError(err, "failed to update category")
	}
	return &UpdateCategoryOutput{Status: http.StatusNoContent}, nil
}
