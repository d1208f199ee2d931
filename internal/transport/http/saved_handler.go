package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type SavedHandler struct {
	saved *service.SavedService
}

func RegisterSaved(e *echo.Echo, auth *service.AuthService, saved *service.SavedService) {
	handler := &SavedHandler{saved: saved}

	protected := e.Group(APIPrefix+"/user/saved", RequireAuth(auth))
	protected.GET("", handler.listSaved)
	protected.POST("/:id", handler.saveDestination)
	protected.DELETE("/:id", handler.unsaveDestination)
}

func (h *SavedHandler) listSaved(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	saved, err := h.saved.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load saved destinations"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"saved": saved})
}

func (h *SavedHandler) saveDestination(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	saved, err := h.saved.Save(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to save destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"saved": saved})
}

func (h *SavedHandler) unsaveDestination(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	saved, err := h.saved.Unsave(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to remove saved destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"saved": saved})
}
