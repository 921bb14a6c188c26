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

func TestIncomeHandler(t *testing.T) {
	suite.Run(t, new(IncomeHandlerSuite))
}

type IncomeHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	incomeService *service_mocks.MockIncomeServiceInterface
	handler       *IncomeHandler
	e             *echo.Echo
	userID        uuid.UUID
}

func (s *IncomeHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.incomeService = service_mocks.NewMockIncomeServiceInterface(s.ctrl)
	s.handler = NewIncomeHandler(s.incomeService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *IncomeHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *IncomeHandlerSuite) newContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *IncomeHandlerSuite) TestCreate_Success() {
	entry := &models.Income{
		ID:     uuid.New(),
		UserID: s.userID,
		Amount: decimal.RequireFromString("1500.00"),
		Date:   "2024-03-01",
	}

	s.incomeService.EXPECT().
		CreateEntry(s.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *dto.CreateIncomeRequest) (*models.Income, error) {
			s.True(req.Amount.Equal(decimal.RequireFromString("1500.00")))
			s.Equal("2024-03-01", req.Date)
			return entry, nil
		})

	c, rec := s.newContext(http.MethodPost, "/api/income", map[string]interface{}{
		"amount": "1500.00",
		"date":   "2024-03-01",
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "2024-03-01")
}

func (s *IncomeHandlerSuite) TestCreate_ForeignCategory() {
	categoryID := uuid.New()

	s.incomeService.EXPECT().
		CreateEntry(s.userID, gomock.Any()).
		Return(nil, repositories.ErrCategoryNotFound)

	c, rec := s.newContext(http.MethodPost, "/api/income", map[string]interface{}{
		"amount":      "100.00",
		"category_id": categoryID.String(),
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CATEGORY_001")
}

func (s *IncomeHandlerSuite) TestCreate_MissingAmount() {
	// No service expectation: the request must be rejected by validation.
	// A body without an amount cannot create a zero-valued entry.
	c, _ := s.newContext(http.MethodPost, "/api/income", map[string]interface{}{
		"date": "2024-03-01",
	})
	s.Error(s.handler.Create(c))

	c, _ = s.newContext(http.MethodPost, "/api/income", map[string]interface{}{})
	s.Error(s.handler.Create(c))
}

func (s *IncomeHandlerSuite) TestCreate_BadDate() {
	c, _ := s.newContext(http.MethodPost, "/api/income", map[string]interface{}{
		"amount": "100.00",
		"date":   "03/01/2024",
	})

	s.Error(s.handler.Create(c))
}

func (s *IncomeHandlerSuite) TestList_Success() {
	entries := []models.Income{
		{ID: uuid.New(), Amount: decimal.RequireFromString("100.00"), Date: "2024-03-01"},
		{ID: uuid.New(), Amount: decimal.RequireFromString("200.00"), Date: "2024-02-01"},
	}

	s.incomeService.EXPECT().
		ListEntries(s.userID).
		Return(entries, nil)

	c, rec := s.newContext(http.MethodGet, "/api/income", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response []json.RawMessage
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response, 2)
}

func (s *IncomeHandlerSuite) TestGet_NotFound() {
	id := uuid.New()

	s.incomeService.EXPECT().
		GetEntry(id, s.userID).
		Return(nil, repositories.ErrIncomeNotFound)

	c, rec := s.newContext(http.MethodGet, "/api/income/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "ENTRY_001")
}

func (s *IncomeHandlerSuite) TestUpdate_Success() {
	id := uuid.New()
	updated := &models.Income{
		ID:     id,
		Amount: decimal.RequireFromString("250.50"),
		Date:   "2024-03-15",
	}

	s.incomeService.EXPECT().
		UpdateEntry(id, s.userID, gomock.Any()).
		Return(updated, nil)

	c, rec := s.newContext(http.MethodPut, "/api/income/"+id.String(), map[string]interface{}{
		"amount": "250.50",
	})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "250.5")
}

func (s *IncomeHandlerSuite) TestDelete_Success() {
	id := uuid.New()

	s.incomeService.EXPECT().
		DeleteEntry(id, s.userID).
		Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/income/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *IncomeHandlerSuite) TestDelete_InvalidID() {
	c, rec := s.newContext(http.MethodDelete, "/api/income/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_007")
}
