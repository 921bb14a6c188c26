package dto

import (
	"time"

	"accubooks/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest contains the data for a new category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type" validate:"required,category_kind"`
	Color string `json:"color,omitempty" validate:"omitempty,hex_color"`
}

// UpdateCategoryRequest contains a partial category update. Nil fields are
// left unchanged.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type  *string `json:"type,omitempty" validate:"omitempty,category_kind"`
	Color *string `json:"color,omitempty" validate:"omitempty,hex_color"`
}

// Category Response DTOs

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategoryResponse builds a category response from the model
func NewCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      category.Kind,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// NewCategoryListResponse builds a list of category responses
func NewCategoryListResponse(categories []models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
