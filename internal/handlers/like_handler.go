package handlers

import (
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("", h.SetLike)
	g.GET("/post/:post_id", h.GetLikeCount)
}

// SetLike creates or replaces a user's like/dislike on a post
func (h *LikeHandler) SetLike(c echo.Context) error {
	var req models.CreateLikeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.likeService.SetLike(c.Request().Context(), req.PostID, req.UserEmail, *req.IsLike); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Like updated"})
}

// GetLikeCount returns the like and dislike totals of a post
func (h *LikeHandler) GetLikeCount(c echo.Context) error {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		return err
	}
	count, err := h.likeService.GetLikeCount(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, count)
}
