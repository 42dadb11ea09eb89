package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/domain/entities"
	"github.com/ecotoken/platform-api/internal/domain/repositories"
	"github.com/ecotoken/platform-api/internal/infrastructure"
)

type SiteService struct {
	sites      repositories.SiteRepository
	selections infrastructure.SiteSelectionStore
}

func NewSiteService(sites repositories.SiteRepository, selections infrastructure.SiteSelectionStore) *SiteService {
	return &SiteService{sites: sites, selections: selections}
}

func (s *SiteService) Get(ctx context.Context, id uuid.UUID) (*entities.Site, error) {
	return s.sites.FindByID(ctx, id)
}

func (s *SiteService) List(ctx context.Context, in schema.Pagination) (*repositories.SitePage, error) {
	limit, cursor, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	page, err := s.sites.List(ctx, limit, cursor)
	if errors.Is(err, repositories.ErrInvalidCursor) {
		return nil, apperr.BadRequest("Invalid cursor.")
	}
	return page, err
}

func (s *SiteService) Create(ctx context.Context, in schema.CreateSite) (*entities.Site, error) {
	now := time.Now()
	return s.sites.Create(ctx, &entities.Site{
		ID:        uuid.New(),
		SiteName:  in.SiteName,
		ProdURL:   in.ProdURL,
		StageURL:  in.StageURL,
		DevURL:    in.DevURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *SiteService) Update(ctx context.Context, id uuid.UUID, in schema.UpdateSite) (*entities.Site, error) {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperr.NotFound("Site not found.")
	}

	if in.SiteName != "" {
		site.SiteName = in.SiteName
	}
	if in.ProdURL != "" {
		site.ProdURL = in.ProdURL
	}
	if in.StageURL != "" {
		site.StageURL = in.StageURL
	}
	if in.DevURL != "" {
		site.DevURL = in.DevURL
	}
	site.UpdatedAt = time.Now()

	return s.sites.Update(ctx, site)
}

// CurrentSite returns the admin's persisted site selection, nil when the
// admin never selected one.
func (s *SiteService) CurrentSite(ctx context.Context, adminID uuid.UUID) (*uuid.UUID, error) {
	siteID, ok, err := s.selections.Get(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &siteID, nil
}

// UpdateCurrent persists a new site selection for the admin after verifying
// the site exists.
func (s *SiteService) UpdateCurrent(ctx context.Context, adminID, siteID uuid.UUID) error {
	site, err := s.sites.FindByID(ctx, siteID)
	if err != nil {
		return err
	}
	if site == nil {
		return apperr.NotFound("Site not found.")
	}
	return s.selections.Set(ctx, adminID, siteID)
}
