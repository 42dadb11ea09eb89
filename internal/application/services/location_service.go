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
)

type LocationService struct {
	locations repositories.LocationRepository
}

func NewLocationService(locations repositories.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

// Create stores a location under the admin's selected site. The site comes
// from the request context, never from client input.
func (s *LocationService) Create(ctx context.Context, siteID uuid.UUID, in schema.CreateLocation) (*entities.EcoLocation, error) {
	now := time.Now()
	return s.locations.Create(ctx, &entities.EcoLocation{
		ID:        uuid.New(),
		SiteID:    siteID,
		Location:  in.Location,
		CN:        in.CN,
		ST:        in.ST,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *LocationService) Update(ctx context.Context, id uuid.UUID, in schema.UpdateLocation) (*entities.EcoLocation, error) {
	loc, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, apperr.NotFound("Location not found.")
	}

	if in.Location != "" {
		loc.Location = in.Location
	}
	if in.CN != "" {
		loc.CN = in.CN
	}
	if in.ST != "" {
		loc.ST = in.ST
	}
	loc.UpdatedAt = time.Now()

	return s.locations.Update(ctx, loc)
}

func (s *LocationService) List(ctx context.Context, siteID uuid.UUID, in schema.Pagination) (*repositories.LocationPage, error) {
	limit, cursor, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	page, err := s.locations.List(ctx, siteID, limit, cursor)
	if errors.Is(err, repositories.ErrInvalidCursor) {
		return nil, apperr.BadRequest("Invalid cursor.")
	}
	return page, err
}
