package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/api/metrics"
	"github.com/snapcart/marketplace/internal/core/ports"
)

type SellerHandler struct {
	sellerService ports.SellerService
}

func NewSellerHandler(sellerService ports.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

type createSellerRequest struct {
	StoreName   string `json:"store_name"  validate:"required,min=2"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type sellerLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type sellerDeletedData struct {
	ProductsDeleted int `json:"products_deleted"`
}

// Create handles POST /sellers: opts the caller into selling. Their user
// role becomes seller as part of the same transaction.
//
// @Summary      Create a seller profile
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSellerRequest  true  "Storefront details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /sellers [post]
func (h *SellerHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createSellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seller, err := h.sellerService.Create(c.Request().Context(), ports.CreateSellerInput{
		OwnerUserID: userID,
		StoreName:   req.StoreName,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.SellersCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "seller profile created", seller)
}

// Get handles GET /sellers/:id (public).
//
// @Summary      Get a seller profile
// @Tags         sellers
// @Produce      json
// @Param        id   path      string  true  "Seller id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /sellers/{id} [get]
func (h *SellerHandler) Get(c echo.Context) error {
	seller, err := h.sellerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "seller", seller)
}

// Login handles POST /sellers/login: resolves the caller's seller profile by
// email with a strict owner match.
//
// @Summary      Seller login
// @Tags         sellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sellerLoginRequest  true  "Seller email"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /sellers/login [post]
func (h *SellerHandler) Login(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sellerLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seller, err := h.sellerService.Login(c.Request().Context(), req.Email, userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "seller login successful", seller)
}

// Delete handles DELETE /sellers: removes the caller's seller profile,
// cascading to products and reviews.
//
// @Summary      Delete the caller's seller profile
// @Tags         sellers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /sellers [delete]
func (h *SellerHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	count, err := h.sellerService.Delete(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	metrics.SellersDeletedTotal.Inc()
	metrics.ProductsDeletedInCascade.Observe(float64(count))
	return respond(c, http.StatusOK, "seller profile deleted", sellerDeletedData{ProductsDeleted: count})
}
