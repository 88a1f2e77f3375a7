package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 5
	maxPageLimit     = 50
)

// httpError maps a service error to the matching echo HTTP error
func httpError(err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	switch svcErr.Kind {
	case services.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, svcErr.Message)
	case services.KindConflict, services.KindValidation:
		return echo.NewHTTPError(http.StatusBadRequest, svcErr.Message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, svcErr.Error()).SetInternal(err)
	}
}

// bindAndValidate binds the request into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// requiredQuery returns a query parameter or a 400 when it is missing
func requiredQuery(c echo.Context, name string) (string, error) {
	value := c.QueryParam(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}
	return value, nil
}

// uuidParam returns a path parameter that must be a UUID
func uuidParam(c echo.Context, name string) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id.String(), nil
}

// pagination parses the zero based page and the page size
func pagination(c echo.Context) (page, limit int, err error) {
	limit = defaultPageLimit
	if v := c.QueryParam("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid page")
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
	}
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	// the row offset is page*limit and must fit in an int
	if page > math.MaxInt/limit {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid page")
	}
	return page, limit, nil
}
