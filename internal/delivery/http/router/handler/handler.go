// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pathID parses a numeric identifier from a path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s: %q", name, c.Param(name))
	}

	return id, nil
}

// pageRequest reads the standard pagination query parameters. Absent or
// malformed values fall back to the backend's defaults.
func pageRequest(c echo.Context) entity.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return entity.PageRequest{Page: page, Size: size}
}
