package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/infrastructure"
	"github.com/ecotoken/platform-api/internal/infrastructure/db/postgres"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))
	return db
}

func newUserService(t *testing.T, db *gorm.DB) *UserService {
	t.Helper()
	return NewUserService(
		postgres.NewUserRepository(db),
		postgres.NewRoleRepository(db),
		infrastructure.NewMailer("", ""),
	)
}

func createSite(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	site := &entities.Site{ID: uuid.New(), SiteName: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	created, err := postgres.NewSiteRepository(db).Create(context.Background(), site)
	require.NoError(t, err)
	return created.ID
}

func createDefaultRole(t *testing.T, db *gorm.DB) {
	t.Helper()
	role := &postgres.RoleModel{
		ID:     uuid.New(),
		Name:   "User",
		Domain: entities.RoleDomainUser,
		Scope:  entities.RoleScopeDefault,
	}
	require.NoError(t, db.Create(role).Error)
}

func validInput(username string) schema.CreateUser {
	return schema.CreateUser{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           username + "@example.com",
		Username:        username,
		Password:        "Abc12345",
		ConfirmPassword: "Abc12345",
	}
}

func TestCreateUserWithoutRoleFailsAndPersistsNothing(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")

	_, err := svc.Create(context.Background(), siteID, validInput("jdoe"))

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeInternal, appErr.Code)
	assert.Equal(t, "Role not found. Creation process cannot proceed.", appErr.Message)

	// nothing was written
	user, err := postgres.NewUserRepository(db).FindByUsername(context.Background(), siteID, "jdoe")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUserHashesPasswordAndAssignsRole(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")
	createDefaultRole(t, db)

	user, err := svc.Create(context.Background(), siteID, validInput("jdoe"))
	require.NoError(t, err)
	assert.Equal(t, siteID, user.SiteID)
	assert.NotEqual(t, uuid.Nil, user.RoleID)
	assert.NotEqual(t, "Abc12345", user.Password)
	assert.NoError(t, user.CheckPassword("Abc12345"))
}

func TestCreateUserDuplicateUsernameIsConflict(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")
	createDefaultRole(t, db)

	_, err := svc.Create(context.Background(), siteID, validInput("jdoe"))
	require.NoError(t, err)

	in := validInput("jdoe")
	in.Email = "second@example.com"
	_, err = svc.Create(context.Background(), siteID, in)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
}

func TestCreateUserDuplicateEmailIsConflict(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")
	createDefaultRole(t, db)

	_, err := svc.Create(context.Background(), siteID, validInput("jdoe"))
	require.NoError(t, err)

	// fresh username, reused email: the message names the email index
	in := validInput("otherdoe")
	in.Email = "jdoe@example.com"
	_, err = svc.Create(context.Background(), siteID, in)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Equal(t, "Email is not available.", appErr.Message)
}

func TestUpdateUserDuplicateEmailIsConflict(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")
	createDefaultRole(t, db)

	_, err := svc.Create(context.Background(), siteID, validInput("jdoe"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), siteID, validInput("otherdoe"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, schema.UpdateUser{Email: "jdoe@example.com"})
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Equal(t, "Email is not available.", appErr.Message)

	_, err = svc.Update(context.Background(), second.ID, schema.UpdateUser{Username: "jdoe"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Username is not available.", appErr.Message)
}

func TestCreateUserSameUsernameOtherSite(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteA := createSite(t, db, "alpha")
	siteB := createSite(t, db, "beta")
	createDefaultRole(t, db)

	_, err := svc.Create(context.Background(), siteA, validInput("jdoe"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), siteB, validInput("jdoe"))
	assert.NoError(t, err)
}

func TestUsernameCheck(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteA := createSite(t, db, "alpha")
	siteB := createSite(t, db, "beta")
	createDefaultRole(t, db)

	require.NoError(t, svc.UsernameCheck(context.Background(), siteA, "jdoe"))

	_, err := svc.Create(context.Background(), siteA, validInput("jdoe"))
	require.NoError(t, err)

	err = svc.UsernameCheck(context.Background(), siteA, "jdoe")
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeConflict, appErr.Code)
	assert.Equal(t, "Username is not available.", appErr.Message)

	// the same username is free on another site
	assert.NoError(t, svc.UsernameCheck(context.Background(), siteB, "jdoe"))
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newUserService(t, db)
	siteID := createSite(t, db, "alpha")
	createDefaultRole(t, db)

	user, err := svc.Create(context.Background(), siteID, validInput("jdoe"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), user.ID, schema.UpdateUser{
		Password:        "NewPass99",
		ConfirmPassword: "NewPass99",
	})
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword("NewPass99"))
	assert.Error(t, updated.CheckPassword("Abc12345"))
}
