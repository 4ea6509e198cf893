package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Username  string `json:"username"   validate:"omitempty,min=3"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// Profile handles GET /profile. The password hash is never serialized.
//
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile", user)
}

// UpdateProfile handles PUT /profile.
//
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile updated", user)
}

// DeleteAccount handles DELETE /profile.
//
// @Summary      Delete the authenticated user's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /profile [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "account deleted", nil)
}
