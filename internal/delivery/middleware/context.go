package middleware

import (
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

// Session cookies, one per identity realm. A request may carry zero, one or
// both.
const (
	AdminCookie = "ecotoken_admin_token"
	UserCookie  = "ecotoken_user_token"
)

const contextKey = "requestContext"

// RequestContext carries everything the session resolver and tenant provider
// produced for one request. It is built once by ResolveSessions and never
// re-resolved mid-request.
type RequestContext struct {
	// AdminSession and UserSession are independent; either may be nil.
	AdminSession *entities.Session
	UserSession  *entities.Session
	// CurrentSite is the tenant matching the request host. Nil when no
	// site claims the host.
	CurrentSite *entities.Site
	// SelectedSite is the admin's persisted site selection, filled in by
	// RequireAdmin. Nil for non-admin requests or admins that never
	// selected a site.
	SelectedSite *uuid.UUID
}

func FromEcho(c echo.Context) *RequestContext {
	rc, _ := c.Get(contextKey).(*RequestContext)
	return rc
}

// RequireCurrentSite returns the host-resolved tenant or fails the request;
// handlers that are tenant-scoped cannot proceed without one.
func (rc *RequestContext) RequireCurrentSite() (uuid.UUID, error) {
	if rc == nil || rc.CurrentSite == nil {
		return uuid.Nil, apperr.BadRequest("No site is configured for this host.")
	}
	return rc.CurrentSite.ID, nil
}

// RequireSelectedSite returns the admin's selected tenant or fails the
// request.
func (rc *RequestContext) RequireSelectedSite() (uuid.UUID, error) {
	if rc == nil || rc.SelectedSite == nil {
		return uuid.Nil, apperr.BadRequest("No site selected. Select a site first.")
	}
	return *rc.SelectedSite, nil
}

// ResolveSessions resolves both identity realms and the host tenant for the
// request. A malformed or expired token is treated as an absent session, not
// as an error.
func ResolveSessions(jwtSvc *infrastructure.JWTService, sites repositories.SiteRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := &RequestContext{}

			if cookie, err := c.Cookie(AdminCookie); err == nil && cookie.Value != "" {
				if sess, err := jwtSvc.Parse(entities.RealmAdmin, cookie.Value); err == nil {
					rc.AdminSession = sess
				}
			}
			if cookie, err := c.Cookie(UserCookie); err == nil && cookie.Value != "" {
				if sess, err := jwtSvc.Parse(entities.RealmUser, cookie.Value); err == nil {
					rc.UserSession = sess
				}
			}

			site, err := sites.FindByHost(c.Request().Context(), requestHost(c))
			if err != nil {
				return err
			}
			rc.CurrentSite = site

			c.Set(contextKey, rc)
			return next(c)
		}
	}
}

func requestHost(c echo.Context) string {
	host := c.Request().Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}
