package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

// ResolveForSite prefers a SITE-scoped role attached to the given site and
// falls back to the DEFAULT role of the domain. (nil, nil) when neither
// exists; the caller decides whether that is fatal.
func (r *RoleRepository) ResolveForSite(ctx context.Context, siteID uuid.UUID, domain string) (*entities.Role, error) {
	var model RoleModel
	err := r.db.WithContext(ctx).
		Joins("JOIN role_sites ON role_sites.role_id = roles.id").
		Where("roles.scope = ? AND role_sites.site_id = ?", entities.RoleScopeSite, siteID).
		First(&model).Error
	if err == nil {
		return roleEntityFromModel(&model), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("domain = ? AND scope = ?", domain, entities.RoleScopeDefault).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return roleEntityFromModel(&model), nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	var model RoleModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return roleEntityFromModel(&model), nil
}

func roleEntityFromModel(model *RoleModel) *entities.Role {
	return &entities.Role{
		ID:        model.ID,
		Name:      model.Name,
		Domain:    model.Domain,
		Scope:     model.Scope,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
