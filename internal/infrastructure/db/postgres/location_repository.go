package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) repositories.LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *entities.EcoLocation) (*entities.EcoLocation, error) {
	if err := r.db.WithContext(ctx).Create(locationModelFromEntity(loc)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return r.FindByID(ctx, loc.ID)
}

func (r *LocationRepository) Update(ctx context.Context, loc *entities.EcoLocation) (*entities.EcoLocation, error) {
	if err := r.db.WithContext(ctx).Save(locationModelFromEntity(loc)).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, loc.ID)
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.EcoLocation, error) {
	var model EcoLocationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return locationEntityFromModel(&model), nil
}

func (r *LocationRepository) List(ctx context.Context, siteID uuid.UUID, limit int, cursor *uuid.UUID) (*repositories.LocationPage, error) {
	q := r.db.WithContext(ctx).Model(&EcoLocationModel{}).
		Where("site_id = ? AND is_delete = ?", siteID, false)

	if cursor != nil {
		key, err := seekFrom(ctx, r.db, EcoLocationModel{}.TableName(), *cursor)
		if err != nil {
			return nil, err
		}
		q = q.Where("(created_at, id) >= (?, ?)", key.CreatedAt, key.ID)
	}

	var models []EcoLocationModel
	if err := q.Order("created_at, id").Limit(limit + 1).Find(&models).Error; err != nil {
		return nil, err
	}

	page := &repositories.LocationPage{}
	if len(models) > limit {
		next := models[limit].ID
		page.NextCursor = &next
		models = models[:limit]
	}
	for i := range models {
		page.Locations = append(page.Locations, locationEntityFromModel(&models[i]))
	}
	return page, nil
}

func locationModelFromEntity(loc *entities.EcoLocation) *EcoLocationModel {
	return &EcoLocationModel{
		ID:        loc.ID,
		SiteID:    loc.SiteID,
		Location:  loc.Location,
		CN:        loc.CN,
		ST:        loc.ST,
		IsDelete:  loc.IsDelete,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}

func locationEntityFromModel(model *EcoLocationModel) *entities.EcoLocation {
	return &entities.EcoLocation{
		ID:        model.ID,
		SiteID:    model.SiteID,
		Location:  model.Location,
		CN:        model.CN,
		ST:        model.ST,
		IsDelete:  model.IsDelete,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
