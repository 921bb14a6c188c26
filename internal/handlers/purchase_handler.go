package handlers

import (
	"net/http"

	"accubooks/internal/dto"
	"accubooks/internal/errors"
	"accubooks/internal/repositories"
	"accubooks/internal/services"

	"github.com/labstack/echo/v4"
)

// PurchaseHandler handles purchase entry endpoints
type PurchaseHandler struct {
	purchaseService services.PurchaseServiceInterface
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService services.PurchaseServiceInterface) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Create handles purchase entry creation
func (h *PurchaseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.purchaseService.CreateEntry(userID, &req)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewPurchaseResponse(entry))
}

// List returns the user's purchase entries, newest date first
func (h *PurchaseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	entries, err := h.purchaseService.ListEntries(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPurchaseListResponse(entries))
}

// Get returns one of the user's purchase entries
func (h *PurchaseHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	entry, err := h.purchaseService.GetEntry(id, userID)
	if err != nil {
		if err == repositories.ErrPurchaseNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPurchaseResponse(entry))
}

// Update applies a partial update to one of the user's purchase entries
func (h *PurchaseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.UpdatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.purchaseService.UpdateEntry(id, userID, &req)
	if err != nil {
		if err == repositories.ErrPurchaseNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPurchaseResponse(entry))
}

// Delete removes one of the user's purchase entries
func (h *PurchaseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.purchaseService.DeleteEntry(id, userID); err != nil {
		if err == repositories.ErrPurchaseNotFound {
			return SendError(c, errors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Purchase entry deleted successfully",
	})
}
