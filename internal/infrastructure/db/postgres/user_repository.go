package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userEntityFromModel(&model), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, siteID uuid.UUID, username string) (*entities.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND username = ?", siteID, username).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userEntityFromModel(&model), nil
}

// List returns one page of the site's users in insertion order. It fetches
// limit+1 rows; when the extra row exists it is popped off the page and its
// ID becomes the cursor of the next page.
func (r *UserRepository) List(ctx context.Context, filter repositories.UserFilter) (*repositories.UserPage, error) {
	q := r.db.WithContext(ctx).Model(&UserModel{}).Where("users.site_id = ?", filter.SiteID)

	if len(filter.Roles) > 0 {
		q = q.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name IN ?", filter.Roles).
			Preload("Role")
	}

	if filter.Cursor != nil {
		key, err := seekFrom(ctx, r.db, UserModel{}.TableName(), *filter.Cursor)
		if err != nil {
			return nil, err
		}
		q = q.Where("(users.created_at, users.id) >= (?, ?)", key.CreatedAt, key.ID)
	}

	var models []UserModel
	err := q.Order("users.created_at, users.id").Limit(filter.Limit + 1).Find(&models).Error
	if err != nil {
		return nil, err
	}

	page := &repositories.UserPage{}
	if len(models) > filter.Limit {
		next := models[filter.Limit].ID
		page.NextCursor = &next
		models = models[:filter.Limit]
	}
	for i := range models {
		page.Users = append(page.Users, userEntityFromModel(&models[i]))
	}
	return page, nil
}

func userModelFromEntity(user *entities.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		SiteID:    user.SiteID,
		RoleID:    user.RoleID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func userEntityFromModel(model *UserModel) *entities.User {
	user := &entities.User{
		ID:        model.ID,
		SiteID:    model.SiteID,
		RoleID:    model.RoleID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Username:  model.Username,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Role != nil {
		user.Role = roleEntityFromModel(model.Role)
	}
	return user
}
