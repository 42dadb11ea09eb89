package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

// RequireAdmin rejects the request with UNAUTHORIZED before the handler runs
// unless a valid admin session is present. On success it resolves the
// admin's selected site into the request context. A user session alone never
// satisfies an admin gate.
func RequireAdmin(selections infrastructure.SiteSelectionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := FromEcho(c)
			if rc == nil || rc.AdminSession == nil {
				return apperr.Unauthorized("You must be signed in as an admin.")
			}

			siteID, ok, err := selections.Get(c.Request().Context(), rc.AdminSession.Subject)
			if err != nil {
				return err
			}
			if ok {
				rc.SelectedSite = &siteID
			}
			return next(c)
		}
	}
}

// RequireUser rejects the request with UNAUTHORIZED unless a valid user
// session is present.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := FromEcho(c)
			if rc == nil || rc.UserSession == nil {
				return apperr.Unauthorized("You must be signed in.")
			}
			return next(c)
		}
	}
}
