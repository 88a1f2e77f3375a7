package services

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"go.uber.org/zap"
)

// ProfileCacheInvalidator drops cached profile snapshots
type ProfileCacheInvalidator interface {
	Invalidate(ctx context.Context, emails ...string) error
}

// ProfileService implements the profile operations
type ProfileService struct {
	profiles repositories.ProfileRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
	resolver *Resolver
	cache    ProfileCacheInvalidator
	logger   *zap.Logger
}

// NewProfileService creates a new ProfileService. cache may be nil.
func NewProfileService(
	profiles repositories.ProfileRepository,
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	likes repositories.LikeRepository,
	resolver *Resolver,
	cache ProfileCacheInvalidator,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		posts:    posts,
		comments: comments,
		likes:    likes,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

// GetProfile returns the profile named by a username or an email
func (s *ProfileService) GetProfile(ctx context.Context, identifier string) (*models.Profile, error) {
	profile, err := s.resolver.ResolveProfile(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateProfile stores a new profile
func (s *ProfileService) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		Email:               req.Email,
		Username:            req.Username,
		AvatarURL:           req.AvatarURL,
		OnboardingCompleted: req.OnboardingCompleted,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, classify(err, "error creating profile", "", "profile already exists or username is taken")
	}
	s.invalidate(ctx, profile.Email)
	return profile, nil
}

// UpdateProfile applies the non-nil fields of req to the profile of email
func (s *ProfileService) UpdateProfile(ctx context.Context, email string, req models.UpdateProfileRequest) (*models.Profile, error) {
	if req.IsEmpty() {
		return nil, validationError("no data to update")
	}
	updates := make(map[string]interface{}, 3)
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.OnboardingCompleted != nil {
		updates["onboarding_completed"] = *req.OnboardingCompleted
	}

	profile, err := s.profiles.Update(ctx, email, updates)
	if err != nil {
		return nil, classify(err, "error updating profile", "profile not found", "username is already taken")
	}
	s.invalidate(ctx, email)
	return profile, nil
}

// GetStats aggregates the activity of the user named by identifier
func (s *ProfileService) GetStats(ctx context.Context, identifier string) (*models.UserStats, error) {
	email, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var stats models.UserStats
	if stats.TotalPosts, err = s.posts.CountByUserEmail(ctx, email); err != nil {
		return nil, upstreamError("error fetching stats", err)
	}
	if stats.TotalComments, err = s.comments.CountByUserEmail(ctx, email); err != nil {
		return nil, upstreamError("error fetching stats", err)
	}
	received, err := s.likes.CountReceivedByUserEmail(ctx, email)
	if err != nil {
		return nil, upstreamError("error fetching stats", err)
	}
	stats.TotalLikesReceived = received.Likes
	stats.TotalDislikesReceived = received.Dislikes
	return &stats, nil
}

func (s *ProfileService) invalidate(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, email); err != nil {
		s.logger.Warn("profile cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
