package services

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/anonto42/rreediitt/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingInvalidator struct{ emails []string }

func (r *recordingInvalidator) Invalidate(_ context.Context, emails ...string) error {
	r.emails = append(r.emails, emails...)
	return nil
}

func newProfileService(t *testing.T) (*ProfileService, *gorm.DB, *recordingInvalidator) {
	db := testutil.OpenSQLite(t)
	profiles := repositories.NewPostgresProfileRepository(db)
	cache := &recordingInvalidator{}
	svc := NewProfileService(
		profiles,
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresCommentRepository(db),
		repositories.NewPostgresLikeRepository(db),
		NewResolver(profiles),
		cache,
		zap.NewNop(),
	)
	return svc, db, cache
}

func TestProfileService_CreateAndConflict(t *testing.T) {
	svc, _, cache := newProfileService(t)
	ctx := context.Background()

	profile, err := svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "alice@example.com", Username: strPtr("alice")})
	require.NoError(t, err)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, []string{"alice@example.com"}, cache.emails)

	_, err = svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "other@example.com", Username: strPtr("alice")})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestProfileService_Update(t *testing.T) {
	svc, _, cache := newProfileService(t)
	ctx := context.Background()
	_, err := svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "alice@example.com", Username: strPtr("alice")})
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "bob@example.com", Username: strPtr("bob")})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, "alice@example.com", models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	done := true
	updated, err := svc.UpdateProfile(ctx, "alice@example.com", models.UpdateProfileRequest{
		AvatarURL:           strPtr("https://img/a.png"),
		OnboardingCompleted: &done,
	})
	require.NoError(t, err)
	assert.True(t, updated.OnboardingCompleted)
	assert.Equal(t, "https://img/a.png", *updated.AvatarURL)
	assert.Equal(t, "alice", *updated.Username)

	_, err = svc.UpdateProfile(ctx, "alice@example.com", models.UpdateProfileRequest{Username: strPtr("bob")})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateProfile(ctx, "ghost@example.com", models.UpdateProfileRequest{Username: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Contains(t, cache.emails, "alice@example.com")
}

func TestProfileService_Stats(t *testing.T) {
	svc, db, _ := newProfileService(t)
	ctx := context.Background()
	_, err := svc.CreateProfile(ctx, models.CreateProfileRequest{Email: "alice@example.com", Username: strPtr("alice")})
	require.NoError(t, err)

	post := models.Post{ID: uuid.NewString(), UserEmail: "alice@example.com", Content: "p", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&models.Comment{ID: uuid.NewString(), PostID: post.ID, UserEmail: "alice@example.com", Content: "c"}).Error)
	likes := NewLikeService(repositories.NewPostgresLikeRepository(db))
	require.NoError(t, likes.SetLike(ctx, post.ID, "bob@example.com", true))
	require.NoError(t, likes.SetLike(ctx, post.ID, "carol@example.com", false))

	stats, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{TotalPosts: 1, TotalComments: 1, TotalLikesReceived: 1, TotalDislikesReceived: 1}, *stats)

	_, err = svc.GetStats(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikeService_SetLikeTwiceKeepsLatest(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()
	post := models.Post{ID: uuid.NewString(), UserEmail: "alice@example.com", Content: "p", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&post).Error)

	svc := NewLikeService(repositories.NewPostgresLikeRepository(db))
	require.NoError(t, svc.SetLike(ctx, post.ID, "bob@example.com", true))
	require.NoError(t, svc.SetLike(ctx, post.ID, "bob@example.com", false))

	count, err := svc.GetLikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeCount{Likes: 0, Dislikes: 1}, count)

	err = svc.SetLike(ctx, uuid.NewString(), "bob@example.com", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_CreateOnMissingPost(t *testing.T) {
	db := testutil.OpenSQLite(t)
	profiles := repositories.NewPostgresProfileRepository(db)
	svc := NewCommentService(repositories.NewPostgresCommentRepository(db), NewEnricher(profiles, zap.NewNop()))

	_, err := svc.CreateComment(context.Background(), models.CreateCommentRequest{
		PostID:    uuid.NewString(),
		UserEmail: "bob@example.com",
		Content:   "hello?",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	profiles := &fakeProfiles{profiles: []models.Profile{{Email: "alice@example.com", Username: strPtr("alice")}}}
	enricher := NewEnricher(profiles, zap.NewNop())

	svc := NewUserService(&fakePosts{authors: []string{"alice@example.com", "bob@example.com"}}, &fakeDirectory{emails: []string{"x@example.com"}}, enricher, zap.NewNop())
	users := svc.ListUsers(context.Background())
	require.Len(t, users, 2)
	assert.Equal(t, "alice", *users[0].Username)
	assert.Nil(t, users[1].Username)

	svc = NewUserService(&fakePosts{}, &fakeDirectory{emails: []string{"x@example.com", "x@example.com", ""}}, enricher, zap.NewNop())
	users = svc.ListUsers(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "x@example.com", users[0].Email)

	svc = NewUserService(&fakePosts{err: errStoreDown}, &fakeDirectory{err: errStoreDown}, enricher, zap.NewNop())
	assert.Empty(t, svc.ListUsers(context.Background()))

	svc = NewUserService(&fakePosts{}, nil, enricher, zap.NewNop())
	assert.Empty(t, svc.ListUsers(context.Background()))
}
