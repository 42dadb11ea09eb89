package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/application/services"
	"github.com/ecotoken/platform-api/internal/delivery/middleware"
)

type AuthHandler struct {
	auth *services.AuthService
	ttl  time.Duration
}

func NewAuthHandler(auth *services.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, ttl: sessionTTL}
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var in schema.Login
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	token, admin, err := h.auth.AdminLogin(c.Request().Context(), in.Username, in.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, middleware.AdminCookie, token)
	return c.JSON(http.StatusOK, newAdminResponse(admin))
}

// UserLogin authenticates against the user realm of the site serving the
// request host.
func (h *AuthHandler) UserLogin(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireCurrentSite()
	if err != nil {
		return err
	}

	var in schema.Login
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	token, user, err := h.auth.UserLogin(c.Request().Context(), siteID, in.Username, in.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, middleware.UserCookie, token)
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) AdminLogout(c echo.Context) error {
	clearSessionCookie(c, middleware.AdminCookie)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) UserLogout(c echo.Context) error {
	clearSessionCookie(c, middleware.UserCookie)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) AdminMe(c echo.Context) error {
	rc := middleware.FromEcho(c)

	admin, err := h.auth.AdminByID(c.Request().Context(), rc.AdminSession.Subject)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperr.Unauthorized("Account no longer exists.")
	}
	return c.JSON(http.StatusOK, newAdminResponse(admin))
}

func (h *AuthHandler) UserMe(c echo.Context) error {
	rc := middleware.FromEcho(c)

	user, err := h.auth.UserByID(c.Request().Context(), rc.UserSession.Subject)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.Unauthorized("Account no longer exists.")
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c echo.Context, name, token string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.ttl),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
