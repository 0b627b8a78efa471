package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const accessDeniedMessage = "Access Denied!"

// RequireSession gates routes that need any authenticated user.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserFromContext(c); !ok {
			return echo.NewHTTPError(http.StatusForbidden, accessDeniedMessage)
		}
		return next(c)
	}
}

// RequireAdmin gates admin-only routes. A non-admin is rejected even when the
// target resource is their own account.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok || !user.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, accessDeniedMessage)
		}
		return next(c)
	}
}

// RequireInventoryAccess gates medicine mutations: the caller must be enabled
// and hold a role above plain "user".
func RequireInventoryAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok || !user.CanManageInventory() {
			return echo.NewHTTPError(http.StatusForbidden, accessDeniedMessage)
		}
		return next(c)
	}
}
