package services

import (
	"context"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePostInput carries a new post and its optional attachment
type CreatePostInput struct {
	Content   string
	UserEmail string
	Image     *MediaFile
	Video     *MediaFile
}

// PostService implements the post operations
type PostService struct {
	posts    repositories.PostRepository
	resolver *Resolver
	enricher *Enricher
	media    *MediaUploader
	logger   *zap.Logger
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, resolver *Resolver, enricher *Enricher, media *MediaUploader, logger *zap.Logger) *PostService {
	return &PostService{posts: posts, resolver: resolver, enricher: enricher, media: media, logger: logger}
}

// ListPosts returns one page of the feed, newest first. page is zero based.
func (s *PostService) ListPosts(ctx context.Context, page, limit int) ([]models.Post, error) {
	posts, err := s.posts.GetAllPosts(ctx, page*limit, limit)
	if err != nil {
		return nil, upstreamError("error fetching posts", err)
	}
	Enrich(ctx, s.enricher, posts, PostAuthor)
	return posts, nil
}

// GetPost returns a single post
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, classify(err, "error fetching post", "post not found", "")
	}
	posts := []models.Post{*post}
	Enrich(ctx, s.enricher, posts, PostAuthor)
	return &posts[0], nil
}

// ListUserPosts returns every post of the user named by identifier
func (s *PostService) ListUserPosts(ctx context.Context, identifier string) ([]models.Post, error) {
	email, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.GetPostsByUserEmail(ctx, email)
	if err != nil {
		return nil, upstreamError("error fetching user posts", err)
	}
	Enrich(ctx, s.enricher, posts, PostAuthor)
	return posts, nil
}

// CreatePost stores a post. A failed media upload is logged and the post is
// created without that attachment.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Image != nil && in.Video != nil {
		return nil, validationError("cannot upload an image and a video at the same time, choose one")
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		UserEmail: in.UserEmail,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}

	if in.Image != nil {
		url, err := s.media.UploadImage(ctx, in.UserEmail, in.Image)
		if err != nil {
			s.logger.Warn("image upload failed, creating post without image",
				zap.String("user_email", in.UserEmail),
				zap.Error(err),
			)
		} else {
			post.ImageURL = &url
		}
	}
	if in.Video != nil {
		url, err := s.media.UploadVideo(ctx, in.UserEmail, in.Video)
		if err != nil {
			s.logger.Warn("video upload failed, creating post without video",
				zap.String("user_email", in.UserEmail),
				zap.Error(err),
			)
		} else {
			post.VideoURL = &url
		}
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, upstreamError("error creating post", err)
	}
	posts := []models.Post{*post}
	Enrich(ctx, s.enricher, posts, PostAuthor)
	return &posts[0], nil
}

// DeletePost deletes a post owned by email
func (s *PostService) DeletePost(ctx context.Context, id, email string) error {
	if err := s.posts.DeleteOwnedPost(ctx, id, email); err != nil {
		return classify(err, "error deleting post", "post not found or not owned by user", "")
	}
	return nil
}
