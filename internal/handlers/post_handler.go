package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("", h.GetPosts)
	g.POST("", h.CreatePost)
	g.GET("/user/:identifier", h.GetUserPosts)
	g.GET("/:post_id", h.GetPost)
	g.DELETE("/:post_id", h.DeletePost)
}

// GetPosts retrieves one page of the feed
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, limit, err := pagination(c)
	if err != nil {
		return err
	}
	posts, err := h.postService.ListPosts(c.Request().Context(), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		return err
	}
	post, err := h.postService.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// GetUserPosts retrieves the posts of a user given by username or email
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	posts, err := h.postService.ListUserPosts(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a post from a multipart form with an optional image or video
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := formMedia(c, "image")
	if err != nil {
		return err
	}
	video, err := formMedia(c, "video")
	if err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), services.CreatePostInput{
		Content:   req.Content,
		UserEmail: req.UserEmail,
		Image:     image,
		Video:     video,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// DeletePost deletes a post owned by the user_email query parameter
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := uuidParam(c, "post_id")
	if err != nil {
		return err
	}
	userEmail, err := requiredQuery(c, "user_email")
	if err != nil {
		return err
	}
	if err := h.postService.DeletePost(c.Request().Context(), postID, userEmail); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Post deleted"})
}

// formMedia reads an optional uploaded file. Missing or unnamed files yield nil.
func formMedia(c echo.Context, field string) (*services.MediaFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) || (err == nil && header.Filename == "") {
		return nil, nil
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+field+" upload")
	}
	data, err := readFormFile(header)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+field+" upload")
	}
	return &services.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
