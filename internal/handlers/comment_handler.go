package handlers

import (
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/post/:post_id", h.GetCommentsForPost)
	g.POST("", h.CreateComment)
}

// GetCommentsForPost retrieves the comments of a post
func (h *CommentHandler) GetCommentsForPost(c echo.Context) error {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		return err
	}
	comments, err := h.commentService.ListComments(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	comment, err := h.commentService.CreateComment(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}
