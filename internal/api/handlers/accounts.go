package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/internal/api/middleware"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// RegisterHandler creates an account and logs it in.
func RegisterHandler(svc *accounts.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RegisterRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		resp, err := svc.Register(c.Request().Context(), req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler verifies credentials and issues a token.
func LoginHandler(svc *accounts.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.LoginRequest
		if err := bindAndValidate(c, &req); err != nil {
			return renderError(c, err)
		}

		resp, err := svc.Login(c.Request().Context(), req)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ProfileHandler returns the authenticated account with its role profile.
func ProfileHandler(svc *accounts.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := svc.Profile(c.Request().Context(), middleware.UserID(c))
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}
