package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gct/report-admin/internal/api/metrics"
	"github.com/gct/report-admin/internal/core/ports"
)

// Session is the access gate: it resolves the caller's session id against the
// store and rejects the request when no live session exists. It performs no
// credential checks and mutates nothing; the sliding-expiry refresh happens
// inside the store.
func Session(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := SessionID(c, cookieName)
			if id == "" {
				return deny(c)
			}

			sess, err := store.Get(c.Request().Context(), id)
			if err != nil {
				return err
			}
			if sess == nil {
				return deny(c)
			}

			c.Set("session_id", id)
			c.Set("user_id", sess.UserID)
			c.Set("username", sess.Username)
			c.Set("role", string(sess.Role))

			return next(c)
		}
	}
}

// SessionID extracts the caller's session id from the session cookie, falling
// back to a bearer Authorization header. Returns "" when neither is present.
func SessionID(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// deny writes the 401 body directly; gate rejections bypass the central
// error handler.
func deny(c echo.Context) error {
	metrics.AuthDeniedTotal.Inc()
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"message": "not logged in or session expired",
	})
}
