package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/domain/entities"
)

// Find* methods return (nil, nil) when no record matches; absence is not an
// error at this layer.

// UserFilter selects a page of users of one site. Roles, when non-empty, is
// an OR-list of role names. Cursor, when set, is the ID of the first record
// of the requested page (inclusive).
type UserFilter struct {
	SiteID uuid.UUID
	Roles  []string
	Limit  int
	Cursor *uuid.UUID
}

// UserPage is one page of users plus, when more records exist, the cursor of
// the next page.
type UserPage struct {
	Users      []*entities.User
	NextCursor *uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByUsername(ctx context.Context, siteID uuid.UUID, username string) (*entities.User, error)
	List(ctx context.Context, filter UserFilter) (*UserPage, error)
}

type RoleRepository interface {
	// ResolveForSite returns the SITE-scoped role attached to the given
	// site, falling back to the DEFAULT role of the domain. (nil, nil)
	// when neither exists.
	ResolveForSite(ctx context.Context, siteID uuid.UUID, domain string) (*entities.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Role, error)
}

type SitePage struct {
	Sites      []*entities.Site
	NextCursor *uuid.UUID
}

type SiteRepository interface {
	Create(ctx context.Context, site *entities.Site) (*entities.Site, error)
	Update(ctx context.Context, site *entities.Site) (*entities.Site, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Site, error)
	// FindByHost matches a request host against the prod/stage/dev URLs.
	FindByHost(ctx context.Context, host string) (*entities.Site, error)
	List(ctx context.Context, limit int, cursor *uuid.UUID) (*SitePage, error)
}

type LocationPage struct {
	Locations  []*entities.EcoLocation
	NextCursor *uuid.UUID
}

type LocationRepository interface {
	Create(ctx context.Context, loc *entities.EcoLocation) (*entities.EcoLocation, error)
	Update(ctx context.Context, loc *entities.EcoLocation) (*entities.EcoLocation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.EcoLocation, error)
	List(ctx context.Context, siteID uuid.UUID, limit int, cursor *uuid.UUID) (*LocationPage, error)
}

// ProjectFilter selects a page of projects of one site. IncludeLocation
// controls eager loading of the related location.
type ProjectFilter struct {
	SiteID          uuid.UUID
	Limit           int
	Cursor          *uuid.UUID
	IncludeLocation bool
}

type ProjectPage struct {
	Projects   []*entities.EcoProject
	NextCursor *uuid.UUID
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.EcoProject) (*entities.EcoProject, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.EcoProject, error)
	FindByIdentifier(ctx context.Context, siteID uuid.UUID, identifier string) (*entities.EcoProject, error)
	List(ctx context.Context, filter ProjectFilter) (*ProjectPage, error)
}

type AdminUserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*entities.AdminUser, error)
}
