package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/api/metrics"
	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

// createUserRequest requires a non-empty email but deliberately does not
// check its format: the identity provider owns the address, this surface
// only records it.
type createUserRequest struct {
	Email string `json:"email" validate:"required"`
}

// UserHandler handles HTTP requests for the user resource. There is no
// update surface: role assignment happens only at seed time.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1alpha1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit   query     int  true  "Page size (1-100)"
// @Param        offset  query     int  true  "Items to skip"
// @Success      200     {array}   domain.User
// @Failure      400     {object}  errorResponse
// @Router       /v1alpha1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	limit, offset, err := parsePagination(c)
	if err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /v1alpha1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /v1alpha1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError("%s", err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{Email: req.Email})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /v1alpha1/users/:userId.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  domain.User
// @Failure      404     {object}  errorResponse
// @Router       /v1alpha1/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("User not found")
	}
	return c.JSON(http.StatusOK, user)
}
