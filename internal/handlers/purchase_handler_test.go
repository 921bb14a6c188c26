package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/repositories"
	"accubooks/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPurchaseHandler(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerSuite))
}

type PurchaseHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	purchaseService *service_mocks.MockPurchaseServiceInterface
	handler         *PurchaseHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *PurchaseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.purchaseService = service_mocks.NewMockPurchaseServiceInterface(s.ctrl)
	s.handler = NewPurchaseHandler(s.purchaseService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *PurchaseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PurchaseHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *PurchaseHandlerSuite) TestCreate_Success() {
	entry := &models.Purchase{
		ID:     uuid.New(),
		UserID: s.userID,
		Name:   "Groceries",
		Amount: decimal.RequireFromString("84.30"),
		Date:   "2024-04-10",
	}

	s.purchaseService.EXPECT().
		CreateEntry(s.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *dto.CreatePurchaseRequest) (*models.Purchase, error) {
			s.Equal("Groceries", req.Name)
			s.True(req.Amount.Equal(decimal.RequireFromString("84.30")))
			return entry, nil
		})

	c, rec := s.newContext(http.MethodPost, "/api/purchases", map[string]interface{}{
		"name":   "Groceries",
		"amount": "84.30",
		"date":   "2024-04-10",
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Groceries")
}

func (s *PurchaseHandlerSuite) TestCreate_MissingName() {
	// No service expectation: validation rejects a purchase without a name
	c, _ := s.newContext(http.MethodPost, "/api/purchases", map[string]interface{}{
		"amount": "84.30",
	})

	s.Error(s.handler.Create(c))
}

func (s *PurchaseHandlerSuite) TestCreate_MissingAmount() {
	c, _ := s.newContext(http.MethodPost, "/api/purchases", map[string]interface{}{
		"name": "Groceries",
	})
	s.Error(s.handler.Create(c))

	c, _ = s.newContext(http.MethodPost, "/api/purchases", map[string]interface{}{})
	s.Error(s.handler.Create(c))
}

func (s *PurchaseHandlerSuite) TestCreate_ForeignCategory() {
	categoryID := uuid.New()

	s.purchaseService.EXPECT().
		CreateEntry(s.userID, gomock.Any()).
		Return(nil, repositories.ErrCategoryNotFound)

	c, rec := s.newContext(http.MethodPost, "/api/purchases", map[string]interface{}{
		"name":        "Groceries",
		"amount":      "84.30",
		"category_id": categoryID.String(),
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CATEGORY_001")
}

func (s *PurchaseHandlerSuite) TestList_Success() {
	entries := []models.Purchase{
		{ID: uuid.New(), Name: "Rent", Amount: decimal.RequireFromString("900.00"), Date: "2024-04-01"},
		{ID: uuid.New(), Name: "Coffee", Amount: decimal.RequireFromString("4.50"), Date: "2024-03-28"},
	}

	s.purchaseService.EXPECT().
		ListEntries(s.userID).
		Return(entries, nil)

	c, rec := s.newContext(http.MethodGet, "/api/purchases", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response []json.RawMessage
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response, 2)
}

func (s *PurchaseHandlerSuite) TestGet_NotFound() {
	id := uuid.New()

	s.purchaseService.EXPECT().
		GetEntry(id, s.userID).
		Return(nil, repositories.ErrPurchaseNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/purchases/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "ENTRY_001")
}

func (s *PurchaseHandlerSuite) TestUpdate_Success() {
	id := uuid.New()
	updated := &models.Purchase{
		ID:     id,
		Name:   "Weekly groceries",
		Amount: decimal.RequireFromString("92.10"),
		Date:   "2024-04-10",
	}

	s.purchaseService.EXPECT().
		UpdateEntry(id, s.userID, gomock.Any()).
		Return(updated, nil)

	c, rec := s.newContext(http.MethodPut, "/api/purchases/"+id.String(), map[string]interface{}{
		"name": "Weekly groceries",
	})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Weekly groceries")
}

func (s *PurchaseHandlerSuite) TestDelete_Success() {
	id := uuid.New()

	s.purchaseService.EXPECT().
		DeleteEntry(id, s.userID).
		Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/purchases/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Purchase entry deleted successfully")
}

func (s *PurchaseHandlerSuite) TestDelete_InvalidID() {
	c, rec := s.newContext(http.MethodDelete, "/api/purchases/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_007")
}
