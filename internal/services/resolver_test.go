package services

import (
	"context"
	"testing"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_UsernameThenEmail(t *testing.T) {
	resolver := NewResolver(&fakeProfiles{profiles: []models.Profile{
		{Email: "alice@example.com", Username: strPtr("alice")},
		{Email: "bob@example.com"},
	}})
	ctx := context.Background()

	email, err := resolver.Resolve(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	email, err = resolver.Resolve(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", email)
}

func TestResolver_UsernameWinsOnCollision(t *testing.T) {
	resolver := NewResolver(&fakeProfiles{profiles: []models.Profile{
		{Email: "alice"},
		{Email: "real-alice@example.com", Username: strPtr("alice")},
	}})

	email, err := resolver.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "real-alice@example.com", email)
}

func TestResolver_NotFound(t *testing.T) {
	resolver := NewResolver(&fakeProfiles{})

	_, err := resolver.Resolve(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = resolver.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolver_StoreFailureIsUpstream(t *testing.T) {
	resolver := NewResolver(&fakeProfiles{err: errStoreDown})

	_, err := resolver.ResolveProfile(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, errStoreDown)
}
