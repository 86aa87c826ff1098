package category

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// categoryReader is the subset of the category service used by the read endpoints.
type categoryReader interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*report.Category, error)
	ListCategories(ctx context.Context, filter service.CategoryFilter) ([]*report.Category, error)
}

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Title     string `json:"title"`
	Type      string `json:"type" enum:"income,expense"`
	TypeLabel string `json:"type_label"`
	ParentID  string `json:"parent_id,omitempty" doc:"Parent category UUID"`
	IsActive  bool   `json:"is_active"`
}

// CategoryBody is the request body for creating or updating a category.
type CategoryBody struct {
	Title    string `json:"title" required:"true" minLength:"1" maxLength:"255" doc:"Category name"`
	Type     string `json:"type" required:"true" enum:"income,expense" doc:"Category type"`
	ParentID string `json:"parentID,omitempty" format:"uuid" doc:"UUID of a root category of the same type"`
	IsActive *bool  `json:"isActive,omitempty" doc:"Defaults to true"`
}

type categoryFields struct {
	title    string
	kind     report.CategoryType
	parentID *uuid.UUID
	isActive bool
}

func categoryFromDomain(c *report.Category) Category {
	out := Category{
		ID:        c.ID.String(),
		Title:     c.Title,
		Type:      c.Type.String(),
		TypeLabel: c.Type.Label(),
		IsActive:  c.IsActive,
	}
	if c.ParentID != nil {
		out.ParentID = c.ParentID.String()
	}
	return out
}

func parseUserID(header string) (uuid.UUID, error) {
	userID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid X-User-ID: %w", err)
	}
	return userID, nil
}

func parseCategoryBody(body CategoryBody) (categoryFields, error) {
	categoryType, err := report.ParseCategoryType(body.Type)
	if err != nil {
		return categoryFields{}, err
	}

	fields := categoryFields{title: body.Title, kind: categoryType, isActive: true}
	if body.IsActive != nil {
		fields.isActive = *body.IsActive
	}
	if body.ParentID != "" {
		parentID, err := uuid.FromString(body.ParentID)
		if err != nil {
			return categoryFields{}, fmt.Errorf("invalid parentID: %w", err)
		}
		fields.parentID = &parentID
	}
	return fields, nil
}

// actionError maps operator failures to API errors.
func actionError(err error, failure string) error {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrInvalidParentCategory),
		errors.Is(err, service.ErrCategoryHasChildren):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
	}
	return huma.NewError(http.StatusInternalServerError, failure, err)
}
