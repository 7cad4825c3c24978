package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/core/domain"
)

const (
	minPageLimit = 1
	maxPageLimit = 100
)

// parsePagination extracts the limit/offset query parameters every list
// endpoint requires. Both must be present: callers page explicitly, there is
// no default page size.
func parsePagination(c echo.Context) (limit, offset int, err error) {
	limitParam := c.QueryParam("limit")
	if limitParam == "" {
		return 0, 0, domain.NewValidationError("limit is required")
	}
	offsetParam := c.QueryParam("offset")
	if offsetParam == "" {
		return 0, 0, domain.NewValidationError("offset is required")
	}

	limit, convErr := strconv.Atoi(limitParam)
	if convErr != nil || limit < minPageLimit || limit > maxPageLimit {
		return 0, 0, domain.NewValidationError("limit must be an integer between 1 and 100")
	}
	offset, convErr = strconv.Atoi(offsetParam)
	if convErr != nil || offset < 0 {
		return 0, 0, domain.NewValidationError("offset must be an integer greater than or equal to 0")
	}
	return limit, offset, nil
}
