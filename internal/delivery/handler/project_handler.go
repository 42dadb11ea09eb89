package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/schema"
	"github.com/ecotoken/platform-api/internal/application/services"
	"github.com/ecotoken/platform-api/internal/delivery/middleware"
	"github.com/ecotoken/platform-api/internal/domain/entities"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// GetAll serves the public app; the tenant is the site serving the request
// host.
func (h *ProjectHandler) GetAll(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireCurrentSite()
	if err != nil {
		return err
	}

	var in schema.ListProjects
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	page, err := h.projects.List(c.Request().Context(), siteID, in)
	if err != nil {
		return err
	}

	resp := projectListResponse{Projects: []projectResponse{}, NextCursor: page.NextCursor}
	for _, p := range page.Projects {
		resp.Projects = append(resp.Projects, newProjectResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get accepts either a project ID or the project's URL identifier. The
// identifier form is tenant-scoped since slugs repeat across sites.
func (h *ProjectHandler) Get(c echo.Context) error {
	ref := c.Param("id")

	var project *entities.EcoProject
	if id, err := uuid.Parse(ref); err == nil {
		project, err = h.projects.Get(c.Request().Context(), id)
		if err != nil {
			return err
		}
	} else {
		siteID, err := middleware.FromEcho(c).RequireCurrentSite()
		if err != nil {
			return err
		}
		project, err = h.projects.GetByIdentifier(c.Request().Context(), siteID, ref)
		if err != nil {
			return err
		}
	}
	if project == nil {
		return apperr.NotFound("Project not found.")
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}
