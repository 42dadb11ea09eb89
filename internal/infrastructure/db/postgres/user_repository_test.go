package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

func TestCreateUserDuplicateUsernameSameSite(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	role := seedDefaultRole(t, db)
	repo := NewUserRepository(db)

	seedUser(t, db, site.ID, role.ID, "jdoe", time.Now())

	dup := entities.NewUser(site.ID, role.ID, "John", "Doe", "other@example.com", "jdoe", "hash")
	_, err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestCreateUserSameUsernameDifferentSites(t *testing.T) {
	db := newTestDB(t)
	siteA := seedSite(t, db, "alpha")
	siteB := seedSite(t, db, "beta")
	role := seedDefaultRole(t, db)

	seedUser(t, db, siteA.ID, role.ID, "jdoe", time.Now())
	seedUser(t, db, siteB.ID, role.ID, "jdoe", time.Now())

	repo := NewUserRepository(db)
	a, err := repo.FindByUsername(context.Background(), siteA.ID, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, a)
	b, err := repo.FindByUsername(context.Background(), siteB.ID, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFindByUsernameAbsent(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")

	user, err := NewUserRepository(db).FindByUsername(context.Background(), site.ID, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	role := seedDefaultRole(t, db)
	repo := NewUserRepository(db)

	base := time.Now().Add(-time.Hour)
	var all []*entities.User
	for i := 0; i < 12; i++ {
		u := seedUser(t, db, site.ID, role.ID, fmt.Sprintf("user%02d", i), base.Add(time.Duration(i)*time.Second))
		all = append(all, u)
	}

	page, err := repo.List(context.Background(), repositories.UserFilter{SiteID: site.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Users, 10)
	require.NotNil(t, page.NextCursor)
	// the cursor is the 11th user's ID: the first record of the next page
	assert.Equal(t, all[10].ID, *page.NextCursor)
	assert.Equal(t, all[0].ID, page.Users[0].ID)

	rest, err := repo.List(context.Background(), repositories.UserFilter{
		SiteID: site.ID,
		Limit:  10,
		Cursor: page.NextCursor,
	})
	require.NoError(t, err)
	require.Len(t, rest.Users, 2)
	assert.Nil(t, rest.NextCursor)
	assert.Equal(t, all[10].ID, rest.Users[0].ID)
	assert.Equal(t, all[11].ID, rest.Users[1].ID)
}

func TestListExactLimitHasNoCursor(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	role := seedDefaultRole(t, db)
	repo := NewUserRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		seedUser(t, db, site.ID, role.ID, fmt.Sprintf("user%02d", i), base.Add(time.Duration(i)*time.Second))
	}

	page, err := repo.List(context.Background(), repositories.UserFilter{SiteID: site.ID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Users, 10)
	assert.Nil(t, page.NextCursor)
}

func TestListScopedToSite(t *testing.T) {
	db := newTestDB(t)
	siteA := seedSite(t, db, "alpha")
	siteB := seedSite(t, db, "beta")
	role := seedDefaultRole(t, db)
	repo := NewUserRepository(db)

	seedUser(t, db, siteA.ID, role.ID, "a-user", time.Now())
	seedUser(t, db, siteB.ID, role.ID, "b-user", time.Now())

	page, err := repo.List(context.Background(), repositories.UserFilter{SiteID: siteA.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "a-user", page.Users[0].Username)
}

func TestListRoleFilter(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")
	userRole := seedDefaultRole(t, db)
	verifierRole := &RoleModel{
		ID:     uuid.New(),
		Name:   "Verifier",
		Domain: entities.RoleDomainUser,
		Scope:  entities.RoleScopeDefault,
	}
	require.NoError(t, db.Create(verifierRole).Error)
	repo := NewUserRepository(db)

	base := time.Now().Add(-time.Hour)
	seedUser(t, db, site.ID, userRole.ID, "plain", base)
	seedUser(t, db, site.ID, verifierRole.ID, "verifier", base.Add(time.Second))

	page, err := repo.List(context.Background(), repositories.UserFilter{
		SiteID: site.ID,
		Roles:  []string{"Verifier"},
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "verifier", page.Users[0].Username)
	// the role relation is loaded when a role filter is given
	require.NotNil(t, page.Users[0].Role)
	assert.Equal(t, "Verifier", page.Users[0].Role.Name)

	both, err := repo.List(context.Background(), repositories.UserFilter{
		SiteID: site.ID,
		Roles:  []string{"User", "Verifier"},
		Limit:  10,
	})
	require.NoError(t, err)
	assert.Len(t, both.Users, 2)
}

func TestListInvalidCursor(t *testing.T) {
	db := newTestDB(t)
	site := seedSite(t, db, "alpha")

	missing := uuid.New()
	_, err := NewUserRepository(db).List(context.Background(), repositories.UserFilter{
		SiteID: site.ID,
		Limit:  10,
		Cursor: &missing,
	})
	assert.ErrorIs(t, err, repositories.ErrInvalidCursor)
}
