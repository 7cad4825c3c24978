package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adminconsole/admin-api/internal/api/metrics"
	"github.com/adminconsole/admin-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the two domain error kinds to 400 (validation) and 404 (not found),
//     returning their messages verbatim.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Services never recover their own errors; this is the sole translation point
// from error kind to transport status.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the route table, method not allowed, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.RequestsRejectedTotal.WithLabelValues("validation").Inc()
		return http.StatusBadRequest, ve.Message
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		metrics.RequestsRejectedTotal.WithLabelValues("not_found").Inc()
		return http.StatusNotFound, nf.Message
	}

	// Unexpected error: log the real cause, return a generic message. Fatal
	// for this request only, never for the process.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
