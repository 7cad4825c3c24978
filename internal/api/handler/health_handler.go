package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness and readiness probes. Everything this
// process needs lives in its own memory, so readiness has no dependencies to
// check and answers as immediately as liveness.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /v1alpha1/health/liveness.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "alive"})
}

// Readiness handles GET /v1alpha1/health/readiness.
func (h *HealthHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ready"})
}
