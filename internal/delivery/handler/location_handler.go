package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/application/services"
	"github.com/ecotoken/platform-api/internal/delivery/middleware"
)

type LocationHandler struct {
	locations *services.LocationService
}

func NewLocationHandler(locations *services.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) Create(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireSelectedSite()
	if err != nil {
		return err
	}

	var in schema.CreateLocation
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	loc, err := h.locations.Create(c.Request().Context(), siteID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newLocationResponse(loc))
}

func (h *LocationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("Invalid location id.")
	}

	var in schema.UpdateLocation
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	loc, err := h.locations.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLocationResponse(loc))
}

func (h *LocationHandler) GetAll(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireSelectedSite()
	if err != nil {
		return err
	}

	var in schema.Pagination
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	page, err := h.locations.List(c.Request().Context(), siteID, in)
	if err != nil {
		return err
	}

	resp := locationListResponse{Locations: []locationResponse{}, NextCursor: page.NextCursor}
	for _, l := range page.Locations {
		resp.Locations = append(resp.Locations, newLocationResponse(l))
	}
	return c.JSON(http.StatusOK, resp)
}
