package repositories

import (
	"errors"
	"fmt"

	"accubooks/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository handles database operations for categories.
// Every read and write is scoped to the owning user's ID.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// Create creates a new category in the database
func (r *CategoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID, scoped to the owning user
func (r *CategoryRepository) GetByID(id, userID uuid.UUID) (*models.Category, error) {
	var category models.Category

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &category, nil
}

// ListByUser retrieves all categories owned by a user, oldest first
func (r *CategoryRepository) ListByUser(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ListByUserAndKind retrieves a user's categories of one kind, oldest first
func (r *CategoryRepository) ListByUserAndKind(userID uuid.UUID, kind string) ([]models.Category, error) {
	var categories []models.Category

	if err := r.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories by kind: %w", err)
	}

	return categories, nil
}

// UpdateFields updates specific fields of a category, scoped to the owning
// user, and returns the updated record
func (r *CategoryRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Category, error) {
	result := r.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrCategoryNotFound
	}

	return r.GetByID(id, userID)
}

// Delete removes a category, scoped to the owning user. Entries referencing
// the category keep existing with their category_id set to NULL.
func (r *CategoryRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
