package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newPostService(posts *fakePosts, blobs *fakeBlobStore, logger *zap.Logger) *PostService {
	profiles := &fakeProfiles{}
	var media *MediaUploader
	if blobs != nil {
		media = NewMediaUploader(blobs, "bucket", "post-images")
	}
	return NewPostService(posts, NewResolver(profiles), NewEnricher(profiles, logger), media, logger)
}

func TestCreatePost_ImageAndVideoRejectedBeforeUpload(t *testing.T) {
	posts := &fakePosts{}
	blobs := &fakeBlobStore{}
	svc := newPostService(posts, blobs, zap.NewNop())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Content:   "both",
		UserEmail: "alice@example.com",
		Image:     &MediaFile{Filename: "a.png", Data: []byte("img")},
		Video:     &MediaFile{Filename: "a.mp4", Data: []byte("vid")},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, blobs.uploads)
	assert.Empty(t, posts.created)
}

func TestCreatePost_UploadsImage(t *testing.T) {
	posts := &fakePosts{}
	blobs := &fakeBlobStore{}
	svc := newPostService(posts, blobs, zap.NewNop())

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Content:   "pic",
		UserEmail: "alice@example.com",
		Image:     &MediaFile{Filename: "cat.png", Data: []byte("img")},
	})
	require.NoError(t, err)
	require.Len(t, blobs.uploads, 1)
	assert.True(t, strings.HasPrefix(blobs.uploads[0], "bucket/post-images/alice_at_example_com/"))
	assert.True(t, strings.HasSuffix(blobs.uploads[0], ".png"))
	require.NotNil(t, post.ImageURL)
	assert.Equal(t, "https://cdn.test/"+blobs.uploads[0], *post.ImageURL)
	assert.Nil(t, post.VideoURL)
	assert.NotEmpty(t, post.ID)
}

func TestCreatePost_UploadFailureKeepsPost(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	posts := &fakePosts{}
	svc := newPostService(posts, &fakeBlobStore{err: errStoreDown}, zap.New(core))

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Content:   "vid",
		UserEmail: "alice@example.com",
		Video:     &MediaFile{Filename: "clip.mov", Data: []byte("vid")},
	})
	require.NoError(t, err)
	assert.Nil(t, post.VideoURL)
	require.Len(t, posts.created, 1)
	assert.Equal(t, 1, logs.FilterMessage("video upload failed, creating post without video").Len())
}

func TestCreatePost_NoStorageConfigured(t *testing.T) {
	posts := &fakePosts{}
	svc := newPostService(posts, nil, zap.NewNop())

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Content:   "pic",
		UserEmail: "alice@example.com",
		Image:     &MediaFile{Filename: "cat.png"},
	})
	require.NoError(t, err)
	assert.Nil(t, post.ImageURL)
}

func TestCreatePost_StoreFailureIsUpstream(t *testing.T) {
	svc := newPostService(&fakePosts{err: errStoreDown}, nil, zap.NewNop())
	_, err := svc.CreatePost(context.Background(), CreatePostInput{Content: "x", UserEmail: "alice@example.com"})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestMediaPath(t *testing.T) {
	assert.Equal(t, "john_doe_at_mail_com", SafeEmail("john.doe@mail.com"))

	p := MediaPath("a@b.c", "photo", "", "jpg")
	assert.True(t, strings.HasPrefix(p, "a_at_b_c/"))
	assert.True(t, strings.HasSuffix(p, ".jpg"))

	p = MediaPath("a@b.c", "movie.webm", "videos", "mp4")
	assert.True(t, strings.HasPrefix(p, "a_at_b_c/videos/"))
	assert.True(t, strings.HasSuffix(p, ".webm"))
}
