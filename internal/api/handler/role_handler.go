package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/api/metrics"
	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

// RoleHandler handles HTTP requests for the role resource, always scoped to
// a project.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /v1alpha1/projects/:projectId/roles.
//
// @Summary      List a project's roles
// @Tags         roles
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Param        limit      query     int     true  "Page size (1-100)"
// @Param        offset     query     int     true  "Items to skip"
// @Success      200        {array}   domain.Role
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	roles, err := h.service.List(c.Request().Context(), c.Param("projectId"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Create handles POST /v1alpha1/projects/:projectId/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        projectId  path      string       true  "Project id"
// @Param        body       body      roleRequest  true  "Role details"
// @Success      201        {object}  domain.Role
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), c.Param("projectId"), ports.RoleInput{
		Name:         req.Name,
		Description:  req.Description,
		AttributeIDs: *req.AttributeIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("role", "create").Inc()
	return c.JSON(http.StatusCreated, role)
}

// Get handles GET /v1alpha1/projects/:projectId/roles/:roleId.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Param        roleId     path      string  true  "Role id"
// @Success      200        {object}  domain.Role
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/roles/{roleId} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.Get(c.Request().Context(), c.Param("projectId"), c.Param("roleId"))
	if err != nil {
		return err
	}
	if role == nil {
		return domain.NewNotFoundError("Role not found")
	}
	return c.JSON(http.StatusOK, role)
}

// Update handles PUT /v1alpha1/projects/:projectId/roles/:roleId.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        projectId  path      string       true  "Project id"
// @Param        roleId     path      string       true  "Role id"
// @Param        body       body      roleRequest  true  "Role details"
// @Success      200        {object}  domain.Role
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/roles/{roleId} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	role, err := h.service.Update(c.Request().Context(), c.Param("projectId"), c.Param("roleId"), ports.RoleInput{
		Name:         req.Name,
		Description:  req.Description,
		AttributeIDs: *req.AttributeIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("role", "update").Inc()
	return c.JSON(http.StatusOK, role)
}
