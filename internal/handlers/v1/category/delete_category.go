package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	operator actionProcessor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op actionProcessor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete category",
		Description:   "Deletes a category. Its subcategories become roots and its transactions become uncategorized.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := parseUserID(input.UserID); err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.UserID)
	logData.AddData("categoryID", id.String())
	if err := h.operator.Process(ctx, &actions.DeleteCategory{ID: id}); err != nil {
		return nil, actionError(err, "failed to delete category")
	}
	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
