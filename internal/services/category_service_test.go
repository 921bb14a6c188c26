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
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	categoryService CategoryServiceInterface
	userID          uuid.UUID
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.categoryService = NewCategoryService(s.categoryRepo, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Success() {
	req := &dto.CreateCategoryRequest{Name: "Groceries", Type: "purchase", Color: "#aabbcc"}

	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Category) error {
		s.Equal(s.userID, c.UserID)
		s.Equal("Groceries", c.Name)
		s.Equal(models.CategoryKindPurchase, c.Kind)
		s.Equal("#aabbcc", c.Color)
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("category_created", map[string]string{"kind": "purchase"})

	category, err := s.categoryService.CreateCategory(s.userID, req)

	s.NoError(err)
	s.Equal("Groceries", category.Name)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_NormalizesKindCase() {
	req := &dto.CreateCategoryRequest{Name: "Salary", Type: "Income"}

	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Category) error {
		s.Equal(models.CategoryKindIncome, c.Kind)
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("category_created", map[string]string{"kind": "income"})

	_, err := s.categoryService.CreateCategory(s.userID, req)

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_InvalidKind() {
	req := &dto.CreateCategoryRequest{Name: "Misc", Type: "expense"}

	category, err := s.categoryService.CreateCategory(s.userID, req)

	s.ErrorIs(err, models.ErrInvalidCategoryKind)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestListCategories_All() {
	expected := []models.Category{{Name: "A"}, {Name: "B"}}
	s.categoryRepo.EXPECT().ListByUser(s.userID).Return(expected, nil)

	categories, err := s.categoryService.ListCategories(s.userID, "")

	s.NoError(err)
	s.Len(categories, 2)
}

func (s *CategoryServiceTestSuite) TestListCategories_FilteredByKind() {
	s.categoryRepo.EXPECT().ListByUserAndKind(s.userID, "income").Return([]models.Category{{Name: "Salary"}}, nil)

	categories, err := s.categoryService.ListCategories(s.userID, "income")

	s.NoError(err)
	s.Len(categories, 1)
}

func (s *CategoryServiceTestSuite) TestListCategories_InvalidKind() {
	categories, err := s.categoryService.ListCategories(s.userID, "savings")

	s.ErrorIs(err, models.ErrInvalidCategoryKind)
	s.Nil(categories)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_PartialFields() {
	id := uuid.New()
	name := "Renamed"
	req := &dto.UpdateCategoryRequest{Name: &name}

	s.categoryRepo.EXPECT().UpdateFields(id, s.userID, gomock.Any()).DoAndReturn(
		func(_, _ uuid.UUID, fields map[string]interface{}) (*models.Category, error) {
			s.Equal("Renamed", fields["name"])
			s.Contains(fields, "updated_at")
			s.NotContains(fields, "kind")
			s.NotContains(fields, "color")
			return &models.Category{ID: id, Name: "Renamed"}, nil
		})

	category, err := s.categoryService.UpdateCategory(id, s.userID, req)

	s.NoError(err)
	s.Equal("Renamed", category.Name)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_EmptyRequestReturnsCurrent() {
	id := uuid.New()
	s.categoryRepo.EXPECT().GetByID(id, s.userID).Return(&models.Category{ID: id}, nil)

	category, err := s.categoryService.UpdateCategory(id, s.userID, &dto.UpdateCategoryRequest{})

	s.NoError(err)
	s.Equal(id, category.ID)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_InvalidKind() {
	kind := "weird"
	req := &dto.UpdateCategoryRequest{Type: &kind}

	category, err := s.categoryService.UpdateCategory(uuid.New(), s.userID, req)

	s.ErrorIs(err, models.ErrInvalidCategoryKind)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	id := uuid.New()
	name := "X"
	s.categoryRepo.EXPECT().UpdateFields(id, s.userID, gomock.Any()).Return(nil, repositories.ErrCategoryNotFound)

	category, err := s.categoryService.UpdateCategory(id, s.userID, &dto.UpdateCategoryRequest{Name: &name})

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	id := uuid.New()
	s.categoryRepo.EXPECT().Delete(id, s.userID).Return(nil)
	s.metrics.EXPECT().IncrementCounter("category_deleted", nil)

	s.NoError(s.categoryService.DeleteCategory(id, s.userID))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	s.categoryRepo.EXPECT().Delete(id, s.userID).Return(repositories.ErrCategoryNotFound)

	err := s.categoryService.DeleteCategory(id, s.userID)

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}
