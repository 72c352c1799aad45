package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session attributes injected by the session gate.
// Presence of user_id proves the gate ran; handlers on protected routes must
// not be reachable without it.
func ctxSession(c echo.Context) (sessionID, userID, username, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session attributes")
	}

	sessionID, _ = c.Get("session_id").(string)
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	return sessionID, userID, username, role, nil
}
