package services

import (
	"context"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
)

// LikeService implements the like/dislike operations
type LikeService struct {
	likes repositories.LikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likes repositories.LikeRepository) *LikeService {
	return &LikeService{likes: likes}
}

// SetLike records a like (isLike true) or dislike for the pair (postID, userEmail).
// Calling it again replaces the previous flag.
func (s *LikeService) SetLike(ctx context.Context, postID, userEmail string, isLike bool) error {
	now := time.Now().UTC()
	like := &models.Like{
		PostID:    postID,
		UserEmail: userEmail,
		IsLike:    isLike,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.likes.UpsertLike(ctx, like); err != nil {
		if IsForeignKeyViolation(err) {
			return notFoundError("post not found")
		}
		return upstreamError("error updating like", err)
	}
	return nil
}

// GetLikeCount returns the like and dislike totals of a post
func (s *LikeService) GetLikeCount(ctx context.Context, postID string) (models.LikeCount, error) {
	count, err := s.likes.CountByPostID(ctx, postID)
	if err != nil {
		return count, upstreamError("error fetching like count", err)
	}
	return count, nil
}
