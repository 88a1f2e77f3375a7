package services

import (
	"context"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/google/uuid"
)

// CommentService implements the comment operations
type CommentService struct {
	comments repositories.CommentRepository
	enricher *Enricher
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, enricher *Enricher) *CommentService {
	return &CommentService{comments: comments, enricher: enricher}
}

// ListComments returns the comments of a post, oldest first
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.comments.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, upstreamError("error fetching comments", err)
	}
	Enrich(ctx, s.enricher, comments, CommentAuthor)
	return comments, nil
}

// CreateComment adds a comment to an existing post
func (s *CommentService) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    req.PostID,
		UserEmail: req.UserEmail,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		if IsForeignKeyViolation(err) {
			return nil, notFoundError("post not found")
		}
		return nil, upstreamError("error creating comment", err)
	}
	comments := []models.Comment{*comment}
	Enrich(ctx, s.enricher, comments, CommentAuthor)
	return &comments[0], nil
}
