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

// PurchaseService handles purchase entry business logic
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repositories.PurchaseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PurchaseServiceInterface {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateEntry creates a new purchase entry for a user
func (s *PurchaseService) CreateEntry(userID uuid.UUID, req *dto.CreatePurchaseRequest) (*models.Purchase, error) {
	if err := s.checkCategory(req.CategoryID, userID); err != nil {
		return nil, err
	}

	entry := &models.Purchase{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Amount:      *req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := s.purchaseRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create purchase entry: %w", err)
	}

	s.metrics.IncrementCounter("entry_created", map[string]string{"kind": "purchase"})
	s.logger.Info("purchase entry created",
		"entry_id", entry.ID,
		"user_id", userID)

	return s.purchaseRepo.GetByID(entry.ID, userID)
}

// ListEntries lists a user's purchase entries, newest date first
func (s *PurchaseService) ListEntries(userID uuid.UUID) ([]models.Purchase, error) {
	return s.purchaseRepo.ListByUser(userID)
}

// GetEntry retrieves one of the user's purchase entries
func (s *PurchaseService) GetEntry(id, userID uuid.UUID) (*models.Purchase, error) {
	return s.purchaseRepo.GetByID(id, userID)
}

// UpdateEntry applies a partial update to one of the user's purchase entries
func (s *PurchaseService) UpdateEntry(id, userID uuid.UUID, req *dto.UpdatePurchaseRequest) (*models.Purchase, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}

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
		return s.purchaseRepo.GetByID(id, userID)
	}

	fields["updated_at"] = time.Now()

	entry, err := s.purchaseRepo.UpdateFields(id, userID, fields)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("entry_updated", map[string]string{"kind": "purchase"})
	s.logger.Info("purchase entry updated",
		"entry_id", id,
		"user_id", userID)

	return entry, nil
}

// DeleteEntry removes one of the user's purchase entries
func (s *PurchaseService) DeleteEntry(id, userID uuid.UUID) error {
	if err := s.purchaseRepo.Delete(id, userID); err != nil {
		return err
	}

	s.metrics.IncrementCounter("entry_deleted", map[string]string{"kind": "purchase"})
	s.logger.Info("purchase entry deleted",
		"entry_id", id,
		"user_id", userID)

	return nil
}

func (s *PurchaseService) checkCategory(categoryID *uuid.UUID, userID uuid.UUID) error {
	if categoryID == nil || *categoryID == uuid.Nil {
		return nil
	}

	if _, err := s.categoryRepo.GetByID(*categoryID, userID); err != nil {
		return err
	}

	return nil
}
