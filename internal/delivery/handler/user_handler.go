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

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UsernameCheck is public; the tenant is the site serving the request host.
// 204 when the username is free, CONFLICT when taken.
func (h *UserHandler) UsernameCheck(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireCurrentSite()
	if err != nil {
		return err
	}

	var in schema.UsernameCheck
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if err := h.users.UsernameCheck(c.Request().Context(), siteID, in.Username); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) GetAll(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireSelectedSite()
	if err != nil {
		return err
	}

	var in schema.ListUsers
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	page, err := h.users.List(c.Request().Context(), siteID, in)
	if err != nil {
		return err
	}

	resp := userListResponse{Users: []userResponse{}, NextCursor: page.NextCursor}
	for _, u := range page.Users {
		resp.Users = append(resp.Users, newUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Create(c echo.Context) error {
	siteID, err := middleware.FromEcho(c).RequireSelectedSite()
	if err != nil {
		return err
	}

	var in schema.CreateUser
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), siteID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newUserResponse(user))
}

// Get returns the user or null. Not found is not an error here; callers
// decide how to render an absent user.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("Invalid user id.")
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("Invalid user id.")
	}

	var in schema.UpdateUser
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}
	if err := in.Validate(); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}
