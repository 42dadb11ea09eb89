package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

type fakeSiteRepo struct {
	byHost map[string]*entities.Site
}

func (f *fakeSiteRepo) Create(ctx context.Context, site *entities.Site) (*entities.Site, error) {
	return site, nil
}

func (f *fakeSiteRepo) Update(ctx context.Context, site *entities.Site) (*entities.Site, error) {
	return site, nil
}

func (f *fakeSiteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Site, error) {
	return nil, nil
}

func (f *fakeSiteRepo) FindByHost(ctx context.Context, host string) (*entities.Site, error) {
	return f.byHost[host], nil
}

func (f *fakeSiteRepo) List(ctx context.Context, limit int, cursor *uuid.UUID) (*repositories.SitePage, error) {
	return &repositories.SitePage{}, nil
}

type gateRig struct {
	e          *echo.Echo
	jwt        *infrastructure.JWTService
	selections *infrastructure.MemorySiteSelectionStore
}

func newGateRig(t *testing.T) *gateRig {
	t.Helper()

	rig := &gateRig{
		e:          echo.New(),
		jwt:        infrastructure.NewJWTService("admin-secret", "user-secret", time.Hour),
		selections: infrastructure.NewMemorySiteSelectionStore(),
	}
	rig.e.HTTPErrorHandler = apperr.HTTPErrorHandler

	sites := &fakeSiteRepo{byHost: map[string]*entities.Site{
		"alpha.example.com": {ID: uuid.New(), SiteName: "alpha"},
	}}
	resolve := ResolveSessions(rig.jwt, sites)

	rig.e.GET("/public", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, resolve)
	rig.e.GET("/admin", func(c echo.Context) error {
		rc := FromEcho(c)
		if rc.SelectedSite != nil {
			return c.String(http.StatusOK, rc.SelectedSite.String())
		}
		return c.NoContent(http.StatusOK)
	}, resolve, RequireAdmin(rig.selections))
	rig.e.GET("/user", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, resolve, RequireUser())
	return rig
}

func (rig *gateRig) do(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	rig.e.ServeHTTP(rec, req)
	return rec
}

func (rig *gateRig) cookie(t *testing.T, realm entities.Realm, name string) *http.Cookie {
	t.Helper()
	token, err := rig.jwt.Issue(realm, uuid.New())
	require.NoError(t, err)
	return &http.Cookie{Name: name, Value: token}
}

func TestPublicRouteNeedsNoSession(t *testing.T) {
	rig := newGateRig(t)
	rec := rig.do(t, "/public")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRouteRejectsAnonymous(t *testing.T) {
	rig := newGateRig(t)
	rec := rig.do(t, "/admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAdminRouteRejectsUserSession(t *testing.T) {
	rig := newGateRig(t)
	// a valid user session does not satisfy the admin gate
	rec := rig.do(t, "/admin", rig.cookie(t, entities.RealmUser, UserCookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRouteRejectsTamperedToken(t *testing.T) {
	rig := newGateRig(t)
	ck := rig.cookie(t, entities.RealmAdmin, AdminCookie)
	ck.Value += "x"
	rec := rig.do(t, "/admin", ck)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutePassesAdminSession(t *testing.T) {
	rig := newGateRig(t)
	rec := rig.do(t, "/admin", rig.cookie(t, entities.RealmAdmin, AdminCookie))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminGateInjectsSelectedSite(t *testing.T) {
	rig := newGateRig(t)

	adminID := uuid.New()
	siteID := uuid.New()
	require.NoError(t, rig.selections.Set(context.Background(), adminID, siteID))

	token, err := rig.jwt.Issue(entities.RealmAdmin, adminID)
	require.NoError(t, err)

	rec := rig.do(t, "/admin", &http.Cookie{Name: AdminCookie, Value: token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, siteID.String(), rec.Body.String())
}

func TestUserRouteRejectsAdminSession(t *testing.T) {
	rig := newGateRig(t)
	rec := rig.do(t, "/user", rig.cookie(t, entities.RealmAdmin, AdminCookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBothRealmsResolveIndependently(t *testing.T) {
	rig := newGateRig(t)
	rec := rig.do(t, "/user",
		rig.cookie(t, entities.RealmAdmin, AdminCookie),
		rig.cookie(t, entities.RealmUser, UserCookie),
	)
	assert.Equal(t, http.StatusOK, rec.Code)
}
