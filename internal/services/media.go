package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the object storage the media uploader writes to
type BlobStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string, overwrite bool) error
	PublicURL(bucket, path string) string
}

// MediaFile is an uploaded file read into memory
type MediaFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type mediaKind struct {
	dir         string
	ext         string
	contentType string
}

var (
	imageMedia = mediaKind{ext: "jpg", contentType: "image/jpeg"}
	videoMedia = mediaKind{dir: "videos", ext: "mp4", contentType: "video/mp4"}
)

var errStorageDisabled = errors.New("media storage is not configured")

// MediaUploader stores post attachments under a per-user prefix and returns their public URL
type MediaUploader struct {
	store  BlobStore
	bucket string
	prefix string
}

// NewMediaUploader creates a new MediaUploader. prefix may be empty.
func NewMediaUploader(store BlobStore, bucket, prefix string) *MediaUploader {
	return &MediaUploader{store: store, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// UploadImage stores an image and returns its public URL
func (u *MediaUploader) UploadImage(ctx context.Context, email string, file *MediaFile) (string, error) {
	return u.upload(ctx, email, file, imageMedia)
}

// UploadVideo stores a video and returns its public URL
func (u *MediaUploader) UploadVideo(ctx context.Context, email string, file *MediaFile) (string, error) {
	return u.upload(ctx, email, file, videoMedia)
}

func (u *MediaUploader) upload(ctx context.Context, email string, file *MediaFile, kind mediaKind) (string, error) {
	if u == nil || u.store == nil {
		return "", errStorageDisabled
	}
	objectPath := MediaPath(email, file.Filename, kind.dir, kind.ext)
	if u.prefix != "" {
		objectPath = u.prefix + "/" + objectPath
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = kind.contentType
	}
	if err := u.store.Upload(ctx, u.bucket, objectPath, file.Data, contentType, true); err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return u.store.PublicURL(u.bucket, objectPath), nil
}

// SafeEmail turns an email into a storage path segment
func SafeEmail(email string) string {
	return strings.NewReplacer("@", "_at_", ".", "_").Replace(email)
}

// MediaPath builds <safe email>/[dir/]<uuid>.<ext>, keeping the original
// file extension when there is one.
func MediaPath(email, filename, dir, defaultExt string) string {
	ext := defaultExt
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	return path.Join(SafeEmail(email), dir, name)
}
