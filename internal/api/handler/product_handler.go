package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/core/domain"
	"github.com/snapcart/marketplace/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type updateProductRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price" validate:"omitempty,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type productData struct {
	domain.Product
	Seller  ports.SellerSummary `json:"seller"`
	Reviews []domain.Review     `json:"review_list,omitempty"`
}

type productListData struct {
	Products []productData `json:"products"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
}

func toProductData(v ports.ProductView) productData {
	return productData{Product: v.Product, Seller: v.Seller, Reviews: v.Reviews}
}

// List handles GET /products (public, paginated).
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Envelope
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.productService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	items := make([]productData, 0, len(result.Products))
	for _, v := range result.Products {
		items = append(items, toProductData(v))
	}
	return respond(c, http.StatusOK, "products", productListData{
		Products: items,
		Total:    result.Total,
		Page:     result.Page,
		Limit:    result.Limit,
	})
}

// Get handles GET /products/:id (public, reviews embedded).
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	view, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product", toProductData(*view))
}

// ListBySeller handles GET /products/seller/:sellerID (public).
//
// @Summary      List a seller's products
// @Tags         products
// @Produce      json
// @Param        sellerID  path      string  true  "Seller id"
// @Success      200       {object}  Envelope
// @Failure      404       {object}  Envelope
// @Router       /products/seller/{sellerID} [get]
func (h *ProductHandler) ListBySeller(c echo.Context) error {
	views, err := h.productService.ListBySeller(c.Request().Context(), c.Param("sellerID"))
	if err != nil {
		return err
	}

	items := make([]productData, 0, len(views))
	for _, v := range views {
		items = append(items, toProductData(v))
	}
	return respond(c, http.StatusOK, "products", items)
}

// Mine handles GET /products/mine: the calling seller's listings.
//
// @Summary      List the caller's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /products/mine [get]
func (h *ProductHandler) Mine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	products, err := h.productService.MyProducts(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "products", products)
}

// Create handles POST /products (seller profile required).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Listing details"
// @Success      201   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		UserID:      userID,
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "product created", product)
}

// Update handles PUT /products/:id (owner only).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), ports.UpdateProductInput{
		UserID:      userID,
		ProductID:   c.Param("id"),
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product updated", product)
}

// Delete handles DELETE /products/:id (owner only, cascades reviews).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product deleted", nil)
}
