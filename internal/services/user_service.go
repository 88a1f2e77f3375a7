package services

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"go.uber.org/zap"
)

// UserDirectory lists the accounts known to the auth provider
type UserDirectory interface {
	ListEmails(ctx context.Context) ([]string, error)
}

// UserService lists known users
type UserService struct {
	posts     repositories.PostRepository
	directory UserDirectory
	enricher  *Enricher
	logger    *zap.Logger
}

// NewUserService creates a new UserService. directory may be nil.
func NewUserService(posts repositories.PostRepository, directory UserDirectory, enricher *Enricher, logger *zap.Logger) *UserService {
	return &UserService{posts: posts, directory: directory, enricher: enricher, logger: logger}
}

// ListUsers returns everyone who has posted, or the auth provider's accounts
// when nobody has. Source failures degrade to an empty list.
func (s *UserService) ListUsers(ctx context.Context) []models.User {
	emails, err := s.posts.GetAuthorEmails(ctx)
	if err != nil {
		s.logger.Warn("listing post authors failed", zap.Error(err))
	}
	if len(emails) == 0 && s.directory != nil {
		emails, err = s.directory.ListEmails(ctx)
		if err != nil {
			s.logger.Warn("listing auth directory failed", zap.Error(err))
		}
	}

	users := make([]models.User, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		users = append(users, models.User{Email: email})
	}
	Enrich(ctx, s.enricher, users, KnownUser)
	return users
}
