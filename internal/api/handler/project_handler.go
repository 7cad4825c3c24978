package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/api/metrics"
	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for the project resource.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1alpha1/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        limit   query     int  true  "Page size (1-100)"
// @Param        offset  query     int  true  "Items to skip"
// @Success      200     {array}   domain.Project
// @Failure      400     {object}  errorResponse
// @Router       /v1alpha1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /v1alpha1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /v1alpha1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:          req.Name,
		Description:   req.Description,
		Kind:          domain.ProjectKind(req.Kind),
		OwnerIDs:      *req.OwnerIDs,
		OwnerGroupIDs: *req.OwnerGroupIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "create").Inc()
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /v1alpha1/projects/:projectId.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  domain.Project
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	if project == nil {
		return domain.NewNotFoundError("Project not found")
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /v1alpha1/projects/:projectId.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId  path      string                true  "Project id"
// @Param        body       body      updateProjectRequest  true  "Project details"
// @Success      200        {object}  domain.Project
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("projectId"), ports.UpdateProjectInput{
		Name:          req.Name,
		Description:   req.Description,
		OwnerIDs:      *req.OwnerIDs,
		OwnerGroupIDs: *req.OwnerGroupIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "update").Inc()
	return c.JSON(http.StatusOK, project)
}
