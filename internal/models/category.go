package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryKindIncome   = "income"
	CategoryKindPurchase = "purchase"

	// DefaultCategoryColor is assigned when a category is created without one.
	DefaultCategoryColor = "#10b981"
)

var (
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

// Category is a user-defined bucket for income or purchase entries.
// Entries reference it weakly: deleting a category orphans the references
// instead of cascading to the entries.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Kind      string    `gorm:"type:varchar(20);not null" json:"type"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#10b981'" json:"color"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	if !IsValidCategoryKind(c.Kind) {
		return ErrInvalidCategoryKind
	}

	return nil
}

func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryKind checks if the category kind is valid
func IsValidCategoryKind(kind string) bool {
	switch kind {
	case CategoryKindIncome, CategoryKindPurchase:
		return true
	default:
		return false
	}
}
