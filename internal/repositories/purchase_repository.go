package repositories

import (
	"errors"
	"fmt"

	"accubooks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPurchaseNotFound = errors.New("purchase entry not found")
)

// PurchaseRepository handles database operations for purchase entries
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepositoryInterface {
	return &PurchaseRepository{
		db: db,
	}
}

// Create creates a new purchase entry in the database
func (r *PurchaseRepository) Create(entry *models.Purchase) error {
	if entry == nil {
		return errors.New("purchase entry cannot be nil")
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create purchase entry: %w", err)
	}

	return nil
}

// GetByID retrieves a purchase entry by ID, scoped to the owning user
func (r *PurchaseRepository) GetByID(id, userID uuid.UUID) (*models.Purchase, error) {
	var entry models.Purchase

	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase entry by ID: %w", err)
	}

	return &entry, nil
}

// ListByUser retrieves all purchase entries owned by a user, newest date first
func (r *PurchaseRepository) ListByUser(userID uuid.UUID) ([]models.Purchase, error) {
	var entries []models.Purchase

	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchase entries: %w", err)
	}

	return entries, nil
}

// UpdateFields updates specific fields of a purchase entry, scoped to the
// owning user, and returns the updated record
func (r *PurchaseRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Purchase, error) {
	result := r.db.Model(&models.Purchase{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update purchase entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrPurchaseNotFound
	}

	return r.GetByID(id, userID)
}

// Delete removes a purchase entry, scoped to the owning user
func (r *PurchaseRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Purchase{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}
