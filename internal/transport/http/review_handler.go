package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func RegisterReviews(e *echo.Echo, auth *service.AuthService, reviews *service.ReviewService) {
	handler := &ReviewHandler{reviews: reviews}

	e.GET(APIPrefix+"/destinations/:id/comments", handler.listComments, OptionalAuth(auth))
	e.POST(APIPrefix+"/destinations/:id/comments", handler.addComment, RequireAuth(auth))
}

func (h *ReviewHandler) listComments(c echo.Context) error {
	var caller *uuid.UUID
	if user, ok := CurrentUser(c); ok {
		caller = &user.ID
	}

	comments, err := h.reviews.ListForDestination(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load comments"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"comments": comments})
}

func (h *ReviewHandler) addComment(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req struct {
		Comment string `json:"comment"`
		Rating  *int   `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	comment, err := h.reviews.Add(c.Request().Context(), user, c.Param("id"), req.Comment, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		case errors.Is(err, service.ErrReviewForbidden):
			return c.JSON(http.StatusForbidden, util.Error("You can only review destinations after completing your stay"))
		case errors.Is(err, service.ErrReviewAlreadyExists):
			return c.JSON(http.StatusConflict, util.Error("You have already reviewed this destination"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to post comment"))
		}
	}
	return c.JSON(http.StatusCreated, util.Envelope{"comment": comment})
}
