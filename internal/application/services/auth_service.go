package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

type AuthService struct {
	admins repositories.AdminUserRepository
	users  repositories.UserRepository
	jwt    *infrastructure.JWTService
}

func NewAuthService(
	admins repositories.AdminUserRepository,
	users repositories.UserRepository,
	jwt *infrastructure.JWTService,
) *AuthService {
	return &AuthService{admins: admins, users: users, jwt: jwt}
}

// AdminLogin authenticates against the global admin realm. A wrong username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, *entities.AdminUser, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if admin == nil || admin.CheckPassword(password) != nil {
		return "", nil, apperr.Unauthorized("Invalid credentials.")
	}

	token, err := s.jwt.Issue(entities.RealmAdmin, admin.ID)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// UserLogin authenticates against the user realm of one site. Users only
// exist within a site, so the current site is part of the credential lookup.
func (s *AuthService) UserLogin(ctx context.Context, siteID uuid.UUID, username, password string) (string, *entities.User, error) {
	user, err := s.users.FindByUsername(ctx, siteID, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.CheckPassword(password) != nil {
		return "", nil, apperr.Unauthorized("Invalid credentials.")
	}

	token, err := s.jwt.Issue(entities.RealmUser, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) AdminByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	return s.admins.FindByID(ctx, id)
}

func (s *AuthService) UserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.users.FindByID(ctx, id)
}
