package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single money-in entry. The category reference is nullable and
// weak: the column is set to NULL when the category is deleted.
type Income struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Date        string          `gorm:"type:varchar(10);not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	if i.Date == "" {
		i.Date = Today()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Income) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	i.UpdatedAt = time.Now()
	return i.Validate()
}

func (i *Income) Validate() error {
	if i.UserID == uuid.Nil {
		return ErrMissingUser
	}

	if i.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !IsValidEntryDate(i.Date) {
		return ErrInvalidDate
	}

	return nil
}

func (i *Income) TableName() string {
	return "income"
}
