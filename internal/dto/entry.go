package dto

import (
	"time"

	"accubooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry Request DTOs

// CreateIncomeRequest contains the data for a new income entry. Amount must be
// present; a decimal zero value is indistinguishable from an absent field, so
// it is a pointer. Date defaults to today when omitted.
type CreateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,entry_amount"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	Date        string           `json:"date,omitempty" validate:"omitempty,entry_date"`
}

// UpdateIncomeRequest contains a partial income entry update. Nil fields are
// left unchanged; a non-nil CategoryID pointing at uuid.Nil clears the category.
type UpdateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,entry_amount"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,entry_date"`
}

// CreatePurchaseRequest contains the data for a new purchase entry. Name and
// amount are both mandatory.
type CreatePurchaseRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,entry_amount"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	Date        string           `json:"date,omitempty" validate:"omitempty,entry_date"`
}

// UpdatePurchaseRequest contains a partial purchase entry update
type UpdatePurchaseRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,entry_amount"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,entry_date"`
}

// Entry Response DTOs

// CategoryRef is the embedded category view carried by entry responses
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IncomeResponse represents an income entry in API responses
type IncomeResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	Category    *CategoryRef    `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PurchaseResponse represents a purchase entry in API responses
type PurchaseResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	Category    *CategoryRef    `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newCategoryRef(category *models.Category) *CategoryRef {
	if category == nil {
		return nil
	}
	return &CategoryRef{
		ID:    category.ID.String(),
		Name:  category.Name,
		Color: category.Color,
	}
}

// NewIncomeResponse builds an income response from the model
func NewIncomeResponse(entry *models.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:          entry.ID.String(),
		Amount:      entry.Amount,
		Description: entry.Description,
		Date:        entry.Date,
		Category:    newCategoryRef(entry.Category),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// NewIncomeListResponse builds a list of income responses
func NewIncomeListResponse(entries []models.Income) []*IncomeResponse {
	responses := make([]*IncomeResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, NewIncomeResponse(&entries[i]))
	}
	return responses
}

// NewPurchaseResponse builds a purchase response from the model
func NewPurchaseResponse(entry *models.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:          entry.ID.String(),
		Name:        entry.Name,
		Amount:      entry.Amount,
		Description: entry.Description,
		Date:        entry.Date,
		Category:    newCategoryRef(entry.Category),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// NewPurchaseListResponse builds a list of purchase responses
func NewPurchaseListResponse(entries []models.Purchase) []*PurchaseResponse {
	responses := make([]*PurchaseResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, NewPurchaseResponse(&entries[i]))
	}
	return responses
}
