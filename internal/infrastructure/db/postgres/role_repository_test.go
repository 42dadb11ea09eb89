package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotoken/platform-api/internal/domain/entities"
)

func TestResolveForSitePrefersSiteScopedRole(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	seedDefaultRole(t, db)

	siteRole := &RoleModel{
		ID:     uuid.New(),
		Name:   "Alpha Member",
		Domain: entities.RoleDomainUser,
		Scope:  entities.RoleScopeSite,
		Sites:  []SiteModel{{ID: site.ID}},
	}
	require.NoError(t, db.Create(siteRole).Error)

	role, err := NewRoleRepository(db).ResolveForSite(context.Background(), site.ID, entities.RoleDomainUser)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, siteRole.ID, role.ID)
}

func TestResolveForSiteFallsBackToDefault(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	other := seedSite(t, db, "beta")
	def := seedDefaultRole(t, db)

	// a SITE role attached to a different site must not match
	foreign := &RoleModel{
		ID:     uuid.New(),
		Name:   "Beta Member",
		Domain: entities.RoleDomainUser,
		Scope:  entities.RoleScopeSite,
		Sites:  []SiteModel{{ID: other.ID}},
	}
	require.NoError(t, db.Create(foreign).Error)

	role, err := NewRoleRepository(db).ResolveForSite(context.Background(), site.ID, entities.RoleDomainUser)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, def.ID, role.ID)
}

func TestResolveForSiteNoRole(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")

	role, err := NewRoleRepository(db).ResolveForSite(context.Background(), site.ID, entities.RoleDomainUser)
	require.NoError(t, err)
	assert.Nil(t, role)
}
