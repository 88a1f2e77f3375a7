package firebase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"firebase.google.com/go/v4/storage"
)

// BucketStore uploads objects to Cloud Storage buckets
type BucketStore struct {
	client *storage.Client
}

// NewBucketStore creates a new BucketStore
func NewBucketStore(client *storage.Client) *BucketStore {
	return &BucketStore{client: client}
}

// Upload writes data to bucket/objectPath. Without overwrite an existing object is kept
// and the write fails with a precondition error.
func (s *BucketStore) Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string, overwrite bool) error {
	handle, err := s.client.Bucket(bucket)
	if err != nil {
		return fmt.Errorf("opening bucket %q: %w", bucket, err)
	}

	obj := handle.Object(objectPath)
	if !overwrite {
		obj = obj.If(gcs.Conditions{DoesNotExist: true})
	}

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", objectPath, err)
	}
	return nil
}

// PublicURL returns the public download URL of an object
func (s *BucketStore) PublicURL(bucket, objectPath string) string {
	return PublicURL(bucket, objectPath)
}

// PublicURL builds https://storage.googleapis.com/<bucket>/<path> with each segment escaped
func PublicURL(bucket, objectPath string) string {
	segments := strings.Split(strings.TrimPrefix(objectPath, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, strings.Join(segments, "/"))
}
