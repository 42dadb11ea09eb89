package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

type UserService struct {
	users  repositories.UserRepository
	roles  repositories.RoleRepository
	mailer *infrastructure.Mailer
}

func NewUserService(
	users repositories.UserRepository,
	roles repositories.RoleRepository,
	mailer *infrastructure.Mailer,
) *UserService {
	return &UserService{users: users, roles: roles, mailer: mailer}
}

// UsernameCheck succeeds when the username is free on the given site. The
// same username on a different site does not conflict.
func (s *UserService) UsernameCheck(ctx context.Context, siteID uuid.UUID, username string) error {
	user, err := s.users.FindByUsername(ctx, siteID, username)
	if err != nil {
		return err
	}
	if user != nil {
		return apperr.Conflict("Username is not available.")
	}
	return nil
}

func (s *UserService) List(ctx context.Context, siteID uuid.UUID, in schema.ListUsers) (*repositories.UserPage, error) {
	limit, cursor, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	page, err := s.users.List(ctx, repositories.UserFilter{
		SiteID: siteID,
		Roles:  in.Role,
		Limit:  limit,
		Cursor: cursor,
	})
	if errors.Is(err, repositories.ErrInvalidCursor) {
		return nil, apperr.BadRequest("Invalid cursor.")
	}
	return page, err
}

// Create adds a user to the given site. The role is resolved server-side: a
// SITE-scoped role attached to the site wins over the USER-domain default.
// Without either, nothing is persisted.
func (s *UserService) Create(ctx context.Context, siteID uuid.UUID, in schema.CreateUser) (*entities.User, error) {
	role, err := s.roles.ResolveForSite(ctx, siteID, entities.RoleDomainUser)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperr.Internal("Role not found. Creation process cannot proceed.")
	}

	// confirmPassword was only ever a validation-layer concern; it is not
	// part of the record.
	user := entities.NewUser(siteID, role.ID, in.FirstName, in.LastName, in.Email, in.Username, in.Password)
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, s.duplicateConflict(ctx, siteID, user.ID, user.Username)
		}
		return nil, err
	}

	go func() {
		if err := s.mailer.SendWelcome(created.Email, created.FirstName, created.Username); err != nil {
			log.Printf("welcome mail to %s failed: %v", created.Email, err)
		}
	}()

	return created, nil
}

// Get looks a user up by ID without a tenant filter, matching the admin
// dashboard's cross-site lookup. (nil, nil) when no user exists.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, in schema.UpdateUser) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found.")
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Password != "" {
		user.Password = in.Password
		if err := user.HashPassword(); err != nil {
			return nil, err
		}
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, s.duplicateConflict(ctx, user.SiteID, user.ID, user.Username)
		}
		return nil, err
	}
	return updated, nil
}

// duplicateConflict reports which unique index a duplicate-key failure hit.
// Both (username, site) and (email, site) are unique; the message names the
// field the caller can actually change.
func (s *UserService) duplicateConflict(ctx context.Context, siteID, id uuid.UUID, username string) error {
	existing, err := s.users.FindByUsername(ctx, siteID, username)
	if err == nil && existing != nil && existing.ID != id {
		return apperr.Conflict("Username is not available.")
	}
	return apperr.Conflict("Email is not available.")
}
