package repositories

import (
	"errors"
	"fmt"

	"accubooks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIncomeNotFound = errors.New("income entry not found")
)

// IncomeRepository handles database operations for income entries.
// Reads preload the referenced category so responses can carry its
// name and color without a second query.
type IncomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &IncomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database
func (r *IncomeRepository) Create(entry *models.Income) error {
	if entry == nil {
		return errors.New("income entry cannot be nil")
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create income entry: %w", err)
	}

	return nil
}

// GetByID retrieves an income entry by ID, scoped to the owning user
func (r *IncomeRepository) GetByID(id, userID uuid.UUID) (*models.Income, error) {
	var entry models.Income

	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income entry by ID: %w", err)
	}

	return &entry, nil
}

// ListByUser retrieves all income entries owned by a user, newest date first
func (r *IncomeRepository) ListByUser(userID uuid.UUID) ([]models.Income, error) {
	var entries []models.Income

	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}

	return entries, nil
}

// UpdateFields updates specific fields of an income entry, scoped to the
// owning user, and returns the updated record
func (r *IncomeRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Income, error) {
	result := r.db.Model(&models.Income{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update income entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrIncomeNotFound
	}

	return r.GetByID(id, userID)
}

// Delete removes an income entry, scoped to the owning user
func (r *IncomeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete income entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}

	return nil
}
