package middleware

import (
	"net/http"
	"time"

	"medstock/internal/entity"
	"medstock/internal/service"

	"github.com/labstack/echo/v4"
)

const DefaultSessionCookieName = "auth_session"

// SessionMiddleware resolves the session cookie on every request it wraps.
// It never rejects by itself: requests without a valid session continue with
// an anonymous context and the role gates decide what is reachable.
type SessionMiddleware struct {
	Auth          *service.AuthService
	CookieName    string
	CookieDomain  string
	SecureCookies bool
	SameSite      http.SameSite
}

func (m SessionMiddleware) cookieName() string {
	if m.CookieName != "" {
		return m.CookieName
	}
	return DefaultSessionCookieName
}

func (m SessionMiddleware) ValidateSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName())
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		session, user, fresh, err := m.Auth.ValidateSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Something went wrong!")
		}
		if session == nil {
			m.ClearSessionCookie(c)
			return next(c)
		}
		if fresh {
			m.SetSessionCookie(c, session)
		}

		SetSessionContext(c, user, session)
		return next(c)
	}
}

func (m SessionMiddleware) SetSessionCookie(c echo.Context, session *entity.Session) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName(),
		Value:    session.ID,
		Path:     "/",
		Domain:   m.CookieDomain,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.SecureCookies,
		SameSite: m.sameSite(),
	})
}

func (m SessionMiddleware) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName(),
		Value:    "",
		Path:     "/",
		Domain:   m.CookieDomain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.SecureCookies,
		SameSite: m.sameSite(),
	})
}

func (m SessionMiddleware) sameSite() http.SameSite {
	if m.SameSite == 0 {
		return http.SameSiteLaxMode
	}
	return m.SameSite
}
