package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) repositories.SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *entities.Site) (*entities.Site, error) {
	model := siteModelFromEntity(site)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return r.FindByID(ctx, site.ID)
}

func (r *SiteRepository) Update(ctx context.Context, site *entities.Site) (*entities.Site, error) {
	if err := r.db.WithContext(ctx).Save(siteModelFromEntity(site)).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, site.ID)
}

func (r *SiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Site, error) {
	var model SiteModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return siteEntityFromModel(&model), nil
}

func (r *SiteRepository) FindByHost(ctx context.Context, host string) (*entities.Site, error) {
	var model SiteModel
	err := r.db.WithContext(ctx).
		Where("prod_url = ? OR stage_url = ? OR dev_url = ?", host, host, host).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return siteEntityFromModel(&model), nil
}

func (r *SiteRepository) List(ctx context.Context, limit int, cursor *uuid.UUID) (*repositories.SitePage, error) {
	q := r.db.WithContext(ctx).Model(&SiteModel{})

	if cursor != nil {
		key, err := seekFrom(ctx, r.db, SiteModel{}.TableName(), *cursor)
		if err != nil {
			return nil, err
		}
		q = q.Where("(created_at, id) >= (?, ?)", key.CreatedAt, key.ID)
	}

	var models []SiteModel
	if err := q.Order("created_at, id").Limit(limit + 1).Find(&models).Error; err != nil {
		return nil, err
	}

	page := &repositories.SitePage{}
	if len(models) > limit {
		next := models[limit].ID
		page.NextCursor = &next
		models = models[:limit]
	}
	for i := range models {
		page.Sites = append(page.Sites, siteEntityFromModel(&models[i]))
	}
	return page, nil
}

func siteModelFromEntity(site *entities.Site) *SiteModel {
	return &SiteModel{
		ID:        site.ID,
		SiteName:  site.SiteName,
		ProdURL:   site.ProdURL,
		StageURL:  site.StageURL,
		DevURL:    site.DevURL,
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
	}
}

func siteEntityFromModel(model *SiteModel) *entities.Site {
	return &entities.Site{
		ID:        model.ID,
		SiteName:  model.SiteName,
		ProdURL:   model.ProdURL,
		StageURL:  model.StageURL,
		DevURL:    model.DevURL,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
