package handlers

import (
	"net/http"

	"accubooks/internal/dto"
	"accubooks/internal/errors"
	"accubooks/internal/repositories"
	"accubooks/internal/services"

	"github.com/labstack/echo/v4"
)

// IncomeHandler handles income entry endpoints
type IncomeHandler struct {
	incomeService services.IncomeServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService services.IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
	}
}

// Create handles income entry creation
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.incomeService.CreateEntry(userID, &req)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewIncomeResponse(entry))
}

// List returns the user's income entries, newest date first
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entries, err := h.incomeService.ListEntries(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIncomeListResponse(entries))
}

// Get returns one of the user's income entries
func (h *IncomeHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	entry, err := h.incomeService.GetEntry(id, userID)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIncomeResponse(entry))
}

// Update applies a partial update to one of the user's income entries
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.incomeService.UpdateEntry(id, userID, &req)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIncomeResponse(entry))
}

// Delete removes one of the user's income entries
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.incomeService.DeleteEntry(id, userID); err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Income entry deleted successfully",
	})
}
