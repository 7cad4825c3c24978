package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/api/metrics"
	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

// UserGroupHandler handles HTTP requests for the user-group resource, always
// scoped to a project.
type UserGroupHandler struct {
	service ports.UserGroupService
}

func NewUserGroupHandler(service ports.UserGroupService) *UserGroupHandler {
	return &UserGroupHandler{service: service}
}

// List handles GET /v1alpha1/projects/:projectId/usergroups.
//
// @Summary      List a project's user groups
// @Tags         usergroups
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Param        limit      query     int     true  "Page size (1-100)"
// @Param        offset     query     int     true  "Items to skip"
// @Success      200        {array}   domain.UserGroup
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/usergroups [get]
func (h *UserGroupHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	groups, err := h.service.List(c.Request().Context(), c.Param("projectId"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// Create handles POST /v1alpha1/projects/:projectId/usergroups.
//
// @Summary      Create a user group
// @Tags         usergroups
// @Accept       json
// @Produce      json
// @Param        projectId  path      string            true  "Project id"
// @Param        body       body      userGroupRequest  true  "Group details"
// @Success      201        {object}  domain.UserGroup
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/usergroups [post]
func (h *UserGroupHandler) Create(c echo.Context) error {
	var req userGroupRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	group, err := h.service.Create(c.Request().Context(), c.Param("projectId"), ports.UserGroupInput{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   *req.MemberIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("usergroup", "create").Inc()
	return c.JSON(http.StatusCreated, group)
}

// Get handles GET /v1alpha1/projects/:projectId/usergroups/:groupId.
//
// @Summary      Get a user group
// @Tags         usergroups
// @Produce      json
// @Param        projectId  path      string  true  "Project id"
// @Param        groupId    path      string  true  "Group id"
// @Success      200        {object}  domain.UserGroup
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/usergroups/{groupId} [get]
func (h *UserGroupHandler) Get(c echo.Context) error {
	group, err := h.service.Get(c.Request().Context(), c.Param("projectId"), c.Param("groupId"))
	if err != nil {
		return err
	}
	if group == nil {
		return domain.NewNotFoundError("User group not found")
	}
	return c.JSON(http.StatusOK, group)
}

// Update handles PUT /v1alpha1/projects/:projectId/usergroups/:groupId.
//
// @Summary      Update a user group
// @Tags         usergroups
// @Accept       json
// @Produce      json
// @Param        projectId  path      string            true  "Project id"
// @Param        groupId    path      string            true  "Group id"
// @Param        body       body      userGroupRequest  true  "Group details"
// @Success      200        {object}  domain.UserGroup
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1alpha1/projects/{projectId}/usergroups/{groupId} [put]
func (h *UserGroupHandler) Update(c echo.Context) error {
	var req userGroupRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	group, err := h.service.Update(c.Request().Context(), c.Param("projectId"), c.Param("groupId"), ports.UserGroupInput{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   *req.MemberIDs,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("usergroup", "update").Inc()
	return c.JSON(http.StatusOK, group)
}
