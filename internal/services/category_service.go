package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService handles category management business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateCategory creates a new category for a user
func (s *CategoryService) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	kind := strings.ToLower(req.Type)
	if !models.IsValidCategoryKind(kind) {
		return nil, models.ErrInvalidCategoryKind
	}

	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Kind:   kind,
		Color:  req.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.metrics.IncrementCounter("category_created", map[string]string{"kind": kind})
	s.logger.Info("category created",
		"category_id", category.ID,
		"user_id", userID,
		"kind", kind)

	return category, nil
}

// ListCategories lists a user's categories, optionally filtered by kind
func (s *CategoryService) ListCategories(userID uuid.UUID, kind string) ([]models.Category, error) {
	if kind == "" {
		return s.categoryRepo.ListByUser(userID)
	}

	kind = strings.ToLower(kind)
	if !models.IsValidCategoryKind(kind) {
		return nil, models.ErrInvalidCategoryKind
	}

	return s.categoryRepo.ListByUserAndKind(userID, kind)
}

// GetCategory retrieves one of the user's categories
func (s *CategoryService) GetCategory(id, userID uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(id, userID)
}

// UpdateCategory applies a partial update to one of the user's categories
func (s *CategoryService) UpdateCategory(id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}

	if req.Type != nil {
		kind := strings.ToLower(*req.Type)
		if !models.IsValidCategoryKind(kind) {
			return nil, models.ErrInvalidCategoryKind
		}
		fields["kind"] = kind
	}

	if req.Color != nil {
		fields["color"] = *req.Color
	}

	if len(fields) == 0 {
		return s.categoryRepo.GetByID(id, userID)
	}

	fields["updated_at"] = time.Now()

	category, err := s.categoryRepo.UpdateFields(id, userID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category updated",
		"category_id", id,
		"user_id", userID)

	return category, nil
}

// DeleteCategory removes one of the user's categories. Entries referencing it
// are kept and become uncategorized.
func (s *CategoryService) DeleteCategory(id, userID uuid.UUID) error {
	if err := s.categoryRepo.Delete(id, userID); err != nil {
		return err
	}

	s.metrics.IncrementCounter("category_deleted", nil)
	s.logger.Info("category deleted",
		"category_id", id,
		"user_id", userID)

	return nil
}
