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

type SiteHandler struct {
	sites *services.SiteService
}

func NewSiteHandler(sites *services.SiteService) *SiteHandler {
	return &SiteHandler{sites: sites}
}

func (h *SiteHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("Invalid site id.")
	}

	site, err := h.sites.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if site == nil {
		return apperr.NotFound("Site not found.")
	}
	return c.JSON(http.StatusOK, newSiteResponse(site))
}

func (h *SiteHandler) GetAll(c echo.Context) error {
	var in schema.Pagination
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	page, err := h.sites.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	resp := siteListResponse{Sites: []siteResponse{}, NextCursor: page.NextCursor}
	for _, s := range page.Sites {
		resp.Sites = append(resp.Sites, newSiteResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SiteHandler) Create(c echo.Context) error {
	var in schema.CreateSite
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	site, err := h.sites.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newSiteResponse(site))
}

func (h *SiteHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("Invalid site id.")
	}

	var in schema.UpdateSite
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	site, err := h.sites.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSiteResponse(site))
}

// GetCurrent returns the admin's persisted site selection, null when none.
func (h *SiteHandler) GetCurrent(c echo.Context) error {
	rc := middleware.FromEcho(c)

	siteID, err := h.sites.CurrentSite(c.Request().Context(), rc.AdminSession.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*uuid.UUID{"siteID": siteID})
}

func (h *SiteHandler) UpdateCurrent(c echo.Context) error {
	rc := middleware.FromEcho(c)

	var in schema.UpdateCurrentSite
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	siteID, err := uuid.Parse(in.SiteID)
	if err != nil {
		return apperr.BadRequest("Invalid site id.")
	}

	if err := h.sites.UpdateCurrent(c.Request().Context(), rc.AdminSession.Subject, siteID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
