package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the sorted projection request. The sort key comes from the
// "sort" query parameter; an empty or unknown key keeps insertion order.
func (h *ProductHandler) List(c echo.Context) error {
	key := entity.SortKey(c.QueryParam("sort"))

	products, err := h.uc.List(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Add handles the add-form submission.
func (h *ProductHandler) Add(c echo.Context) error {
	var draft *usecase.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.Add(c.Request().Context(), draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added successfully")
}

// Update handles the edit-form submission.
func (h *ProductHandler) Update(c echo.Context) error {
	var draft *usecase.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.Update(c.Request().Context(), c.Param("id"), draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Remove handles the delete request.
func (h *ProductHandler) Remove(c echo.Context) error {
	output, err := h.uc.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product removal processed")
}
