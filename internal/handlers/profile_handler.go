package handlers

import (
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests related to user profiles
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.POST("", h.CreateProfile)
	g.GET("/:identifier", h.GetProfile)
	g.GET("/:identifier/stats", h.GetStats)
	g.PUT("/:email", h.UpdateProfile)
}

// GetProfile retrieves a profile by username or email
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileService.GetProfile(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// CreateProfile creates a profile
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req models.CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := h.profileService.CreateProfile(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// UpdateProfile partially updates the profile of :email
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := h.profileService.UpdateProfile(c.Request().Context(), c.Param("email"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetStats returns the activity totals of a user
func (h *ProfileHandler) GetStats(c echo.Context) error {
	stats, err := h.profileService.GetStats(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
