package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles every router of the API surface.
type Handlers struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Sites     *SiteHandler
	Locations *LocationHandler
	Projects  *ProjectHandler
}

// Register wires the API routes. resolve runs on every route and builds the
// request context; requireAdmin/requireUser gate their procedure class before
// any handler executes; loginLimit throttles the credential endpoints.
func Register(e *echo.Echo, h Handlers, resolve, requireAdmin, requireUser, loginLimit echo.MiddlewareFunc) {
	api := e.Group("/api", resolve)

	// public procedures
	api.POST("/users/username-check", h.Users.UsernameCheck)
	api.GET("/eco-projects", h.Projects.GetAll)
	api.GET("/eco-projects/:id", h.Projects.Get)
	api.POST("/admin-auth/login", h.Auth.AdminLogin, loginLimit)
	api.POST("/admin-auth/logout", h.Auth.AdminLogout)
	api.POST("/user-auth/login", h.Auth.UserLogin, loginLimit)
	api.POST("/user-auth/logout", h.Auth.UserLogout)

	// user-authenticated procedures
	api.GET("/user-auth/me", h.Auth.UserMe, requireUser)

	// admin-authenticated procedures
	api.GET("/admin-auth/me", h.Auth.AdminMe, requireAdmin)
	api.GET("/users", h.Users.GetAll, requireAdmin)
	api.POST("/users", h.Users.Create, requireAdmin)
	api.GET("/users/:id", h.Users.Get, requireAdmin)
	api.PATCH("/users/:id", h.Users.Update, requireAdmin)
	api.GET("/sites", h.Sites.GetAll, requireAdmin)
	api.POST("/sites", h.Sites.Create, requireAdmin)
	api.GET("/sites/current", h.Sites.GetCurrent, requireAdmin)
	api.PUT("/sites/current", h.Sites.UpdateCurrent, requireAdmin)
	api.GET("/sites/:id", h.Sites.Get, requireAdmin)
	api.PATCH("/sites/:id", h.Sites.Update, requireAdmin)
	api.GET("/eco-locations", h.Locations.GetAll, requireAdmin)
	api.POST("/eco-locations", h.Locations.Create, requireAdmin)
	api.PATCH("/eco-locations/:id", h.Locations.Update, requireAdmin)
}
