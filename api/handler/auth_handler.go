package handler

import (
	"net/http"
	"strings"

	"medstock/api/middleware"
	"medstock/internal/dto"
	"medstock/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
	Cookies  middleware.SessionMiddleware
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate, cookies middleware.SessionMiddleware) *AuthHandler {
	return &AuthHandler{Service: svc, Validate: validate, Cookies: cookies}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	user, session, err := h.Service.Signup(c.Request().Context(), req)
	if err != nil {
		// Duplicate email/phone included: signup failures stay generic.
		c.Logger().Error(err)
		return writeError(c, http.StatusInternalServerError, "Something went wrong!")
	}

	h.Cookies.SetSessionCookie(c, session)
	return c.JSON(http.StatusCreated, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	user, session, err := h.Service.Login(c.Request().Context(), req, clientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	h.Cookies.SetSessionCookie(c, session)
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if session, ok := middleware.SessionFromContext(c); ok {
		var userID *string
		if user, ok := middleware.UserFromContext(c); ok {
			userID = &user.ID
		}
		if err := h.Service.Logout(c.Request().Context(), session.ID, userID, clientIP(c)); err != nil {
			return writeServiceError(c, err)
		}
	}
	h.Cookies.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, http.StatusForbidden, "Access Denied!")
	}

	var req dto.ResetPasswordRequest
	if ok, err := bindAndValidate(c, h.Validate, &req); !ok {
		return err
	}

	if err := h.Service.ResetPassword(c.Request().Context(), user.ID, req.Password, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully!"})
}

func clientIP(c echo.Context) *string {
	ip := strings.TrimSpace(c.RealIP())
	if ip == "" {
		return nil
	}
	return &ip
}
