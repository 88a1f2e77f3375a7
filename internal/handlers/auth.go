package handlers

import (
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the known-user directory. Sign-in itself is handled by the auth provider.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
}

// GetUsers lists known users with their profile display data
func (h *AuthHandler) GetUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.userService.ListUsers(c.Request().Context()))
}
