package handlers

import (
	"net/http"

	"accubooks/internal/dto"
	"accubooks/internal/errors"
	"accubooks/internal/models"
	"accubooks/internal/repositories"
	"accubooks/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create handles category creation
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, &req)
	if err != nil {
		if err == models.ErrInvalidCategoryKind {
			return SendError(c, errors.CategoryInvalidKind)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// List returns the user's categories, optionally filtered by type
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	kind := c.QueryParam("type")

	categories, err := h.categoryService.ListCategories(userID, kind)
	if err != nil {
		if err == models.ErrInvalidCategoryKind {
			return SendError(c, errors.CategoryInvalidKind)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// Get returns one of the user's categories
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	category, err := h.categoryService.GetCategory(id, userID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Update applies a partial update to one of the user's categories
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(id, userID, &req)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == models.ErrInvalidCategoryKind {
			return SendError(c, errors.CategoryInvalidKind)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete removes one of the user's categories. Entries referencing it keep
// existing with their category cleared.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.categoryService.DeleteCategory(id, userID); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}
