package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type DestinationHandler struct {
	catalog *service.CatalogService
}

func RegisterDestinations(e *echo.Echo, catalog *service.CatalogService) {
	handler := &DestinationHandler{catalog: catalog}

	e.GET(APIPrefix+"/destinations", handler.listDestinations)
	e.GET(APIPrefix+"/destinations/:id", handler.getDestination)
	e.POST(APIPrefix+"/init-data", handler.initData)
}

func (h *DestinationHandler) listDestinations(c echo.Context) error {
	destinations, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destinations"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"destinations": destinations})
}

func (h *DestinationHandler) getDestination(c echo.Context) error {
	dest, err := h.catalog.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"destination": dest})
}

func (h *DestinationHandler) initData(c echo.Context) error {
	seeded, err := h.catalog.Seed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to initialize sample data"))
	}
	message := "Sample data already present"
	if seeded {
		message = "Sample data initialized"
	}
	return c.JSON(http.StatusOK, util.Envelope{"message": message})
}
