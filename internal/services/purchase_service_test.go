package services

import (
	"log/slog"
	"testing"

	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/repositories"
	"accubooks/internal/repositories/repository_mocks"
	"accubooks/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	purchaseRepo    *repository_mocks.MockPurchaseRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	purchaseService PurchaseServiceInterface
	userID          uuid.UUID
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.purchaseRepo = repository_mocks.NewMockPurchaseRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.purchaseService = NewPurchaseService(s.purchaseRepo, s.categoryRepo, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *PurchaseServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPurchaseServiceSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

func (s *PurchaseServiceTestSuite) TestCreateEntry_WithOwnedCategory() {
	categoryID := uuid.New()
	amount := decimal.RequireFromString("18.90")
	req := &dto.CreatePurchaseRequest{
		Name:       "Coffee beans",
		Amount:     &amount,
		CategoryID: &categoryID,
		Date:       "2024-04-10",
	}

	s.categoryRepo.EXPECT().GetByID(categoryID, s.userID).Return(&models.Category{ID: categoryID}, nil)
	s.purchaseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Purchase) error {
		s.Equal("Coffee beans", e.Name)
		s.Equal(&categoryID, e.CategoryID)
		e.ID = uuid.New()
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("entry_created", map[string]string{"kind": "purchase"})
	s.purchaseRepo.EXPECT().GetByID(gomock.Any(), s.userID).DoAndReturn(
		func(id, _ uuid.UUID) (*models.Purchase, error) {
			return &models.Purchase{ID: id, Name: "Coffee beans"}, nil
		})

	entry, err := s.purchaseService.CreateEntry(s.userID, req)

	s.NoError(err)
	s.Equal("Coffee beans", entry.Name)
}

func (s *PurchaseServiceTestSuite) TestCreateEntry_ForeignCategoryRejected() {
	categoryID := uuid.New()
	amount := decimal.RequireFromString("900.00")
	req := &dto.CreatePurchaseRequest{
		Name:       "Rent",
		Amount:     &amount,
		CategoryID: &categoryID,
	}

	s.categoryRepo.EXPECT().GetByID(categoryID, s.userID).Return(nil, repositories.ErrCategoryNotFound)

	entry, err := s.purchaseService.CreateEntry(s.userID, req)

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
	s.Nil(entry)
}

func (s *PurchaseServiceTestSuite) TestUpdateEntry_RenameOnly() {
	id := uuid.New()
	name := "Weekly groceries"
	req := &dto.UpdatePurchaseRequest{Name: &name}

	s.purchaseRepo.EXPECT().UpdateFields(id, s.userID, gomock.Any()).DoAndReturn(
		func(_, _ uuid.UUID, fields map[string]interface{}) (*models.Purchase, error) {
			s.Equal("Weekly groceries", fields["name"])
			s.NotContains(fields, "amount")
			return &models.Purchase{ID: id, Name: name}, nil
		})
	s.metrics.EXPECT().IncrementCounter("entry_updated", map[string]string{"kind": "purchase"})

	entry, err := s.purchaseService.UpdateEntry(id, s.userID, req)

	s.NoError(err)
	s.Equal(name, entry.Name)
}

func (s *PurchaseServiceTestSuite) TestDeleteEntry_NotFound() {
	id := uuid.New()
	s.purchaseRepo.EXPECT().Delete(id, s.userID).Return(repositories.ErrPurchaseNotFound)

	err := s.purchaseService.DeleteEntry(id, s.userID)

	s.ErrorIs(err, repositories.ErrPurchaseNotFound)
}
