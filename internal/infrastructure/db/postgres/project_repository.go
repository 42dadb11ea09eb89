package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.EcoProject) (*entities.EcoProject, error) {
	if err := r.db.WithContext(ctx).Create(projectModelFromEntity(project)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return r.FindByID(ctx, project.ID)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.EcoProject, error) {
	var model EcoProjectModel
	err := r.db.WithContext(ctx).Preload("Location").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return projectEntityFromModel(&model), nil
}

// FindByIdentifier resolves a project by its URL slug. Identifiers are only
// unique within a site, so the lookup is tenant-scoped.
func (r *ProjectRepository) FindByIdentifier(ctx context.Context, siteID uuid.UUID, identifier string) (*entities.EcoProject, error) {
	var model EcoProjectModel
	err := r.db.WithContext(ctx).Preload("Location").
		Where("site_id = ? AND identifier = ?", siteID, identifier).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return projectEntityFromModel(&model), nil
}

func (r *ProjectRepository) List(ctx context.Context, filter repositories.ProjectFilter) (*repositories.ProjectPage, error) {
	q := r.db.WithContext(ctx).Model(&EcoProjectModel{}).Where("site_id = ?", filter.SiteID)

	if filter.IncludeLocation {
		q = q.Preload("Location")
	}

	if filter.Cursor != nil {
		key, err := seekFrom(ctx, r.db, EcoProjectModel{}.TableName(), *filter.Cursor)
		if err != nil {
			return nil, err
		}
		q = q.Where("(created_at, id) >= (?, ?)", key.CreatedAt, key.ID)
	}

	var models []EcoProjectModel
	if err := q.Order("created_at, id").Limit(filter.Limit + 1).Find(&models).Error; err != nil {
		return nil, err
	}

	page := &repositories.ProjectPage{}
	if len(models) > filter.Limit {
		next := models[filter.Limit].ID
		page.NextCursor = &next
		models = models[:filter.Limit]
	}
	for i := range models {
		page.Projects = append(page.Projects, projectEntityFromModel(&models[i]))
	}
	return page, nil
}

func projectModelFromEntity(project *entities.EcoProject) *EcoProjectModel {
	return &EcoProjectModel{
		ID:           project.ID,
		SiteID:       project.SiteID,
		LocationID:   project.LocationID,
		Title:        project.Title,
		Identifier:   project.Identifier,
		Intro:        project.Intro,
		Status:       project.Status,
		FundAmount:   project.FundAmount,
		FundReceived: project.FundReceived,
		ListImage:    project.ListImage,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

func projectEntityFromModel(model *EcoProjectModel) *entities.EcoProject {
	project := &entities.EcoProject{
		ID:           model.ID,
		SiteID:       model.SiteID,
		LocationID:   model.LocationID,
		Title:        model.Title,
		Identifier:   model.Identifier,
		Intro:        model.Intro,
		Status:       model.Status,
		FundAmount:   model.FundAmount,
		FundReceived: model.FundReceived,
		ListImage:    model.ListImage,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Location != nil {
		project.Location = locationEntityFromModel(model.Location)
	}
	return project
}
