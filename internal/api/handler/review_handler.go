package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapcart/marketplace/internal/api/metrics"
	"github.com/snapcart/marketplace/internal/core/ports"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}

// Create handles POST /products/:id/reviews.
//
// @Summary      Review a product
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Product id"
// @Param        body  body      reviewRequest  true  "Review"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /products/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviewService.Create(c.Request().Context(), ports.CreateReviewInput{
		ProductID:    c.Param("id"),
		AuthorUserID: userID,
		Rating:       req.Rating,
		Review:       req.Review,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "review created", review)
}

// Update handles PUT /products/:id/reviews/:reviewID (author only).
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string         true  "Product id"
// @Param        reviewID  path      string         true  "Review id"
// @Param        body      body      reviewRequest  true  "Review"
// @Success      200       {object}  Envelope
// @Failure      403       {object}  Envelope
// @Router       /products/{id}/reviews/{reviewID} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviewService.Update(c.Request().Context(), ports.UpdateReviewInput{
		ProductID:    c.Param("id"),
		ReviewID:     c.Param("reviewID"),
		AuthorUserID: userID,
		Rating:       req.Rating,
		Review:       req.Review,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "review updated", review)
}

// Delete handles DELETE /products/:id/reviews/:reviewID (author only).
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "Product id"
// @Param        reviewID  path      string  true  "Review id"
// @Success      200       {object}  Envelope
// @Failure      403       {object}  Envelope
// @Router       /products/{id}/reviews/{reviewID} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.reviewService.Delete(c.Request().Context(), c.Param("id"), c.Param("reviewID"), userID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "review deleted", nil)
}
