package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func RegisterProfile(e *echo.Echo, auth *service.AuthService, profiles *service.ProfileService) {
	handler := &ProfileHandler{profiles: profiles}

	protected := e.Group(APIPrefix+"/user", RequireAuth(auth))
	protected.GET("/profile", handler.getProfile)
	protected.PUT("/avatar", handler.updateAvatar)
}

func (h *ProfileHandler) getProfile(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	profile, err := h.profiles.Get(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load profile"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"profile": profile})
}

func (h *ProfileHandler) updateAvatar(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("avatar file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read avatar file"))
	}
	defer file.Close()

	profile, err := h.profiles.UpdateAvatar(c.Request().Context(), user, service.AvatarUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		if errors.Is(err, service.ErrAvatarValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to update avatar"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"profile": profile})
}
