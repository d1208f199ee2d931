package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func RegisterBookings(e *echo.Echo, auth *service.AuthService, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	protected := e.Group(APIPrefix, RequireAuth(auth))
	protected.POST("/destinations/:id/book", handler.createBooking)
	protected.GET("/user/bookings", handler.listBookings)
	protected.GET("/user/visited/:id", handler.hasVisited)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req struct {
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
		Guests   int    `json:"guests"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	booking, err := h.bookings.Create(c.Request().Context(), user, c.Param("id"), service.BookingCreateInput{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create booking"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"booking": booking,
		"message": "Booking confirmed",
	})
}

func (h *BookingHandler) listBookings(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	bookings, err := h.bookings.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load bookings"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"bookings": bookings})
}

// hasVisited never hard-fails: an unresolvable check reads as "not visited".
func (h *BookingHandler) hasVisited(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	visited := h.bookings.HasVisited(c.Request().Context(), user.ID, c.Param("id"))
	return c.JSON(http.StatusOK, util.Envelope{"hasVisited": visited})
}
