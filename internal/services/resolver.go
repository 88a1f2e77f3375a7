package services

import (
	"context"
	"errors"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
)

// ProfileFinder looks up single profiles by username or email
type ProfileFinder interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
}

// Resolver maps a user-facing identifier, either a username or an email, to a profile.
// A username match wins over an email match.
type Resolver struct {
	profiles ProfileFinder
}

// NewResolver creates a new Resolver
func NewResolver(profiles ProfileFinder) *Resolver {
	return &Resolver{profiles: profiles}
}

// ResolveProfile returns the profile named by identifier
func (r *Resolver) ResolveProfile(ctx context.Context, identifier string) (*models.Profile, error) {
	if identifier == "" {
		return nil, notFoundError("user not found")
	}

	profile, err := r.profiles.GetByUsername(ctx, identifier)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, upstreamError("error resolving user", err)
	}

	profile, err = r.profiles.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, classify(err, "error resolving user", "user not found", "")
	}
	return profile, nil
}

// Resolve returns the canonical email behind identifier
func (r *Resolver) Resolve(ctx context.Context, identifier string) (string, error) {
	profile, err := r.ResolveProfile(ctx, identifier)
	if err != nil {
		return "", err
	}
	return profile.Email, nil
}
