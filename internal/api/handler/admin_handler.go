package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/core/ports"
)

// AdminHandler exposes platform-admin moderation routes. The RBAC middleware
// gates all of them on the platform_admin role.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all user accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "users", users)
}

// DeleteProduct handles DELETE /admin/products/:id.
//
// @Summary      Remove any product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product removed", nil)
}

// DeleteReview handles DELETE /admin/products/:id/reviews/:reviewID.
//
// @Summary      Remove any review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "Product id"
// @Param        reviewID  path      string  true  "Review id"
// @Success      200       {object}  Envelope
// @Failure      404       {object}  Envelope
// @Router       /admin/products/{id}/reviews/{reviewID} [delete]
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	if err := h.adminService.DeleteReview(c.Request().Context(), c.Param("id"), c.Param("reviewID")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "review removed", nil)
}
