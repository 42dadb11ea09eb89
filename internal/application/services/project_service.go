package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
)

type ProjectService struct {
	projects repositories.ProjectRepository
}

func NewProjectService(projects repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context, siteID uuid.UUID, in schema.ListProjects) (*repositories.ProjectPage, error) {
	limit, cursor, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	page, err := s.projects.List(ctx, repositories.ProjectFilter{
		SiteID:          siteID,
		Limit:           limit,
		Cursor:          cursor,
		IncludeLocation: in.Location,
	})
	if errors.Is(err, repositories.ErrInvalidCursor) {
		return nil, apperr.BadRequest("Invalid cursor.")
	}
	return page, err
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*entities.EcoProject, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) GetByIdentifier(ctx context.Context, siteID uuid.UUID, identifier string) (*entities.EcoProject, error) {
	return s.projects.FindByIdentifier(ctx, siteID, identifier)
}
