package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wanderlust-backend/internal/service"
	"wanderlust-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group(APIPrefix + "/auth")
	group.POST("/signup", handler.signup)
	group.POST("/login", handler.login)
	group.POST("/google", handler.google)
	group.POST("/logout", handler.logout, RequireAuth(auth))
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignupValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, util.Error("an account with this email already exists"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create account"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"user":      result.User,
		"token":     result.Token,
		"expiresAt": result.ExpiresAt.UTC().Format(time.RFC3339),
		"message":   "Account created",
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error("invalid email or password"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to sign in"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user":      result.User,
		"token":     result.Token,
		"expiresAt": result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AuthHandler) google(c echo.Context) error {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return c.JSON(http.StatusUnauthorized, util.Error("invalid google token"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to sign in"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user":      result.User,
		"token":     result.Token,
		"expiresAt": result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to sign out"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"message": "Signed out"})
}
