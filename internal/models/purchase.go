package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase is a single money-out entry. Unlike income it carries a required
// name describing what was bought.
type Purchase struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        string          `gorm:"type:varchar(10);not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Date == "" {
		p.Date = Today()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Purchase) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *Purchase) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrMissingUser
	}

	if p.Name == "" {
		return errors.New("purchase name is required")
	}

	if p.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !IsValidEntryDate(p.Date) {
		return ErrInvalidDate
	}

	return nil
}

func (p *Purchase) TableName() string {
	return "purchases"
}
