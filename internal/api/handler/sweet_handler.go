package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for the catalog. Reads are public;
// the router guards the mutating routes with Auth + RBAC(admin) so the role
// check always runs before any handler code.
type SweetHandler struct {
	service ports.CatalogService
}

func NewSweetHandler(service ports.CatalogService) *SweetHandler {
	return &SweetHandler{service: service}
}

// List handles GET /sweets/.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Success      200  {array}  sweetResponse
// @Router       /sweets/ [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.ListSweets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Get handles GET /sweets/:id.
//
// @Summary      Get a sweet by id
// @Tags         sweets
// @Produce      json
// @Param        id   path      string  true  "Sweet id (UUID)"
// @Success      200  {object}  sweetResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id} [get]
func (h *SweetHandler) Get(c echo.Context) error {
	sweet, err := h.service.GetSweet(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Create handles POST /sweets/create (admin only).
//
// @Summary      Create a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /sweets/create [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.CreateSweet(c.Request().Context(), toCreateSweetInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSweet) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid sweet payload"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// Update handles PUT /sweets/:id/update (admin only).
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id (UUID)"
// @Param        body  body      updateSweetRequest  true  "Fields to change"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sweets/{id}/update [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.UpdateSweet(c.Request().Context(), c.Param("id"), toUpdateSweetInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSweetNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		case errors.Is(err, domain.ErrInvalidSweet):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid sweet payload"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /sweets/:id/delete (admin only).
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Security     BearerAuth
// @Param        id  path  string  true  "Sweet id (UUID)"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sweets/{id}/delete [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSweet(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /categories/. The listing always starts with the
// synthetic "all" entry.
//
// @Summary      List catalog categories
// @Tags         sweets
// @Produce      json
// @Success      200  {array}  ports.Category
// @Router       /categories/ [get]
func (h *SweetHandler) Categories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
