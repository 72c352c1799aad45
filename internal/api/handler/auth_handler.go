package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gct/report-admin/internal/api/metrics"
	"github.com/gct/report-admin/internal/api/middleware"
	"github.com/gct/report-admin/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieName string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, sessionTTL: sessionTTL}
}

// Login authenticates a user and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(result.Token, h.sessionTTL))

	return c.JSON(http.StatusOK, loginResponse{
		Token:    result.Token,
		Username: result.Username,
		Role:     string(result.Role),
		UserID:   result.UserID,
	})
}

// Logout closes the caller's session if one exists. Always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	id := middleware.SessionID(c, h.cookieName)
	if err := h.authService.Logout(c.Request().Context(), id); err != nil {
		return err
	}

	// Expire the cookie regardless of whether a session existed.
	c.SetCookie(h.sessionCookie("", -time.Hour))

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Current returns the descriptor of the session making the request.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  currentUserResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/current [get]
func (h *AuthHandler) Current(c echo.Context) error {
	_, userID, username, role, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
}

// ChangePassword rotates the caller's password after re-verifying the old one.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Password change details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID, _, _, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	input := ports.ChangePasswordInput{
		Username:        req.Username,
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}
	if err := h.authService.ChangePassword(c.Request().Context(), input, sessionID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password changed"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
