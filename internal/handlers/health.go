package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root identifies the API
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "RReediitt API"})
}

// HealthCheck reports that the server is up
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
