package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
)

// newTestDB opens a shared in-memory SQLite database, unique per test, with
// the same error translation the production PostgreSQL connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedSite(t *testing.T, db *gorm.DB, name string) *entities.Site {
	t.Helper()

	site := &entities.Site{
		ID:        uuid.New(),
		SiteName:  name,
		ProdURL:   name + ".example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	created, err := NewSiteRepository(db).Create(context.Background(), site)
	require.NoError(t, err)
	return created
}

func seedDefaultRole(t *testing.T, db *gorm.DB) *RoleModel {
	t.Helper()

	role := &RoleModel{
		ID:     uuid.New(),
		Name:   "User",
		Domain: entities.RoleDomainUser,
		Scope:  entities.RoleScopeDefault,
	}
	require.NoError(t, db.Create(role).Error)
	return role
}

func seedUser(t *testing.T, db *gorm.DB, siteID, roleID uuid.UUID, username string, createdAt time.Time) *entities.User {
	t.Helper()

	user := entities.NewUser(siteID, roleID, "Jane", "Doe", username+"@example.com", username, "irrelevant-hash")
	user.CreatedAt = createdAt
	user.UpdatedAt = createdAt
	created, err := NewUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err)
	return created
}
