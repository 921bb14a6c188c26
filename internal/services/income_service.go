package services

import (
	"fmt"
	"log/slog"
	"time"

	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/repositories"

	"github.com/google/uuid"
)

// IncomeService handles income entry business logic. Category references are
// checked against the owning user before they are stored.
type IncomeService struct {
	incomeRepo   repositories.IncomeRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewIncomeService creates a new income service
func NewIncomeService(
	incomeRepo repositories.IncomeRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) IncomeServiceInterface {
	return &IncomeService{
		incomeRepo:   incomeRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateEntry creates a new income entry for a user
func (s *IncomeService) CreateEntry(userID uuid.UUID, req *dto.CreateIncomeRequest) (*models.Income, error) {
	if err := s.checkCategory(req.CategoryID, userID); err != nil {
		return nil, err
	}

	entry := &models.Income{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      *req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := s.incomeRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	s.metrics.IncrementCounter("entry_created", map[string]string{"kind": "income"})
	s.logger.Info("income entry created",
		"entry_id", entry.ID,
		"user_id", userID)

	return s.incomeRepo.GetByID(entry.ID, userID)
}

// ListEntries lists a user's income entries, newest date first
func (s *IncomeService) ListEntries(userID uuid.UUID) ([]models.Income, error) {
	return s.incomeRepo.ListByUser(userID)
}

// GetEntry retrieves one of the user's income entries
func (s *IncomeService) GetEntry(id, userID uuid.UUID) (*models.Income, error) {
	return s.incomeRepo.GetByID(id, userID)
}

// UpdateEntry applies a partial update to one of the user's income entries
func (s *IncomeService) UpdateEntry(id, userID uuid.UUID, req *dto.UpdateIncomeRequest) (*models.Income, error) {
	fields := map[string]interface{}{}

	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}

	if req.CategoryID != nil {
		if *req.CategoryID == uuid.Nil {
			fields["category_id"] = nil
		} else {
			if err := s.checkCategory(req.CategoryID, userID); err != nil {
				return nil, err
			}
			fields["category_id"] = *req.CategoryID
		}
	}

	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if req.Date != nil {
		fields["date"] = *req.Date
	}

	if len(fields) == 0 {
		return s.incomeRepo.GetByID(id, userID)
	}

	fields["updated_at"] = time.Now()

	entry, err := s.incomeRepo.UpdateFields(id, userID, fields)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("entry_updated", map[string]string{"kind": "income"})
	s.logger.Info("income entry updated",
		"entry_id", id,
		"user_id", userID)

	return entry, nil
}

// DeleteEntry removes one of the user's income entries
func (s *IncomeService) DeleteEntry(id, userID uuid.UUID) error {
	if err := s.incomeRepo.Delete(id, userID); err != nil {
		return err
	}

	s.metrics.IncrementCounter("entry_deleted", map[string]string{"kind": "income"})
	s.logger.Info("income entry deleted",
		"entry_id", id,
		"user_id", userID)

	return nil
}

// checkCategory verifies a referenced category exists and belongs to the user
func (s *IncomeService) checkCategory(categoryID *uuid.UUID, userID uuid.UUID) error {
	if categoryID == nil || *categoryID == uuid.Nil {
		return nil
	}

	if _, err := s.categoryRepo.GetByID(*categoryID, userID); err != nil {
		return err
	}

	return nil
}
