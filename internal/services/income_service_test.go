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

type IncomeServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	incomeRepo    *repository_mocks.MockIncomeRepositoryInterface
	categoryRepo  *repository_mocks.MockCategoryRepositoryInterface
	metrics       *service_mocks.MockMetricsRecorderInterface
	incomeService IncomeServiceInterface
	userID        uuid.UUID
}

func (s *IncomeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.incomeRepo = repository_mocks.NewMockIncomeRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.incomeService = NewIncomeService(s.incomeRepo, s.categoryRepo, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *IncomeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIncomeServiceSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}

func (s *IncomeServiceTestSuite) TestCreateEntry_WithoutCategory() {
	amount := decimal.RequireFromString("250.00")
	req := &dto.CreateIncomeRequest{
		Amount: &amount,
		Date:   "2024-03-01",
	}

	var createdID uuid.UUID
	s.incomeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Income) error {
		s.Equal(s.userID, e.UserID)
		s.Nil(e.CategoryID)
		e.ID = uuid.New()
		createdID = e.ID
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("entry_created", map[string]string{"kind": "income"})
	s.incomeRepo.EXPECT().GetByID(gomock.Any(), s.userID).DoAndReturn(
		func(id, _ uuid.UUID) (*models.Income, error) {
			s.Equal(createdID, id)
			return &models.Income{ID: id, UserID: s.userID}, nil
		})

	entry, err := s.incomeService.CreateEntry(s.userID, req)

	s.NoError(err)
	s.Equal(createdID, entry.ID)
}

func (s *IncomeServiceTestSuite) TestCreateEntry_ChecksCategoryOwnership() {
	categoryID := uuid.New()
	amount := decimal.RequireFromString("100.00")
	req := &dto.CreateIncomeRequest{
		Amount:     &amount,
		CategoryID: &categoryID,
		Date:       "2024-03-01",
	}

	s.categoryRepo.EXPECT().GetByID(categoryID, s.userID).Return(nil, repositories.ErrCategoryNotFound)

	entry, err := s.incomeService.CreateEntry(s.userID, req)

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
	s.Nil(entry)
}

func (s *IncomeServiceTestSuite) TestUpdateEntry_ClearsCategoryWithNilUUID() {
	id := uuid.New()
	nilID := uuid.Nil
	req := &dto.UpdateIncomeRequest{CategoryID: &nilID}

	s.incomeRepo.EXPECT().UpdateFields(id, s.userID, gomock.Any()).DoAndReturn(
		func(_, _ uuid.UUID, fields map[string]interface{}) (*models.Income, error) {
			s.Contains(fields, "category_id")
			s.Nil(fields["category_id"])
			return &models.Income{ID: id}, nil
		})
	s.metrics.EXPECT().IncrementCounter("entry_updated", map[string]string{"kind": "income"})

	entry, err := s.incomeService.UpdateEntry(id, s.userID, req)

	s.NoError(err)
	s.Equal(id, entry.ID)
}

func (s *IncomeServiceTestSuite) TestUpdateEntry_EmptyRequestReturnsCurrent() {
	id := uuid.New()
	s.incomeRepo.EXPECT().GetByID(id, s.userID).Return(&models.Income{ID: id}, nil)

	entry, err := s.incomeService.UpdateEntry(id, s.userID, &dto.UpdateIncomeRequest{})

	s.NoError(err)
	s.Equal(id, entry.ID)
}

func (s *IncomeServiceTestSuite) TestUpdateEntry_NotFound() {
	id := uuid.New()
	amount := decimal.RequireFromString("1.00")
	s.incomeRepo.EXPECT().UpdateFields(id, s.userID, gomock.Any()).Return(nil, repositories.ErrIncomeNotFound)

	entry, err := s.incomeService.UpdateEntry(id, s.userID, &dto.UpdateIncomeRequest{Amount: &amount})

	s.ErrorIs(err, repositories.ErrIncomeNotFound)
	s.Nil(entry)
}

func (s *IncomeServiceTestSuite) TestDeleteEntry_Success() {
	id := uuid.New()
	s.incomeRepo.EXPECT().Delete(id, s.userID).Return(nil)
	s.metrics.EXPECT().IncrementCounter("entry_deleted", map[string]string{"kind": "income"})

	s.NoError(s.incomeService.DeleteEntry(id, s.userID))
}

func (s *IncomeServiceTestSuite) TestListEntries_PassThrough() {
	s.incomeRepo.EXPECT().ListByUser(s.userID).Return([]models.Income{{}, {}}, nil)

	entries, err := s.incomeService.ListEntries(s.userID)

	s.NoError(err)
	s.Len(entries, 2)
}
