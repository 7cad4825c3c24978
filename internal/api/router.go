package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/adminconsole/admin-api/internal/api/handler"
	"github.com/adminconsole/admin-api/internal/api/middleware"
	"github.com/adminconsole/admin-api/internal/core/service"
	"github.com/adminconsole/admin-api/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	e.Use(echoprometheus.NewMiddleware("adminapi"))
	e.Use(middleware.Identity())

	// --- Services, wired in dependency order ---
	// Roles validate project references, users resolve role ids, groups
	// validate both. Constructors seed their own data, so order matters.
	projectService := service.NewProjectService(log)
	roleService := service.NewRoleService(projectService, log)
	userService := service.NewUserService(roleService, log)
	groupService := service.NewUserGroupService(projectService, userService, log)

	projectHandler := handler.NewProjectHandler(projectService)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewUserGroupHandler(groupService)
	healthHandler := handler.NewHealthHandler()

	// --- Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Admin API Mock Server")
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1alpha1")

	v1.GET("/health/liveness", healthHandler.Liveness)
	v1.GET("/health/readiness", healthHandler.Readiness)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:projectId", projectHandler.Get)
	v1.PUT("/projects/:projectId", projectHandler.Update)

	v1.GET("/projects/:projectId/roles", roleHandler.List)
	v1.POST("/projects/:projectId/roles", roleHandler.Create)
	v1.GET("/projects/:projectId/roles/:roleId", roleHandler.Get)
	v1.PUT("/projects/:projectId/roles/:roleId", roleHandler.Update)

	v1.GET("/projects/:projectId/usergroups", groupHandler.List)
	v1.POST("/projects/:projectId/usergroups", groupHandler.Create)
	v1.GET("/projects/:projectId/usergroups/:groupId", groupHandler.Get)
	v1.PUT("/projects/:projectId/usergroups/:groupId", groupHandler.Update)

	v1.GET("/users", userHandler.List)
	v1.POST("/users", userHandler.Create)
	v1.GET("/users/:userId", userHandler.Get)

	return e
}
