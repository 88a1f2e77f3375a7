package services

import (
	"context"
	"errors"
	"sync"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
)

func strPtr(s string) *string { return &s }

type fakeProfiles struct {
	mu       sync.Mutex
	profiles []models.Profile
	err      error
	batches  [][]string
}

func (f *fakeProfiles) GetByUsername(_ context.Context, username string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.profiles {
		if f.profiles[i].Username != nil && *f.profiles[i].Username == username {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.profiles {
		if f.profiles[i].Email == email {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProfiles) GetDisplayByEmails(_ context.Context, emails []string) ([]models.ProfileDisplay, error) {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), emails...))
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ProfileDisplay
	for _, e := range emails {
		for _, p := range f.profiles {
			if p.Email == e {
				out = append(out, models.ProfileDisplay{Email: p.Email, Username: p.Username, AvatarURL: p.AvatarURL})
			}
		}
	}
	return out, nil
}

type fakePosts struct {
	repositories.PostRepository
	created []models.Post
	authors []string
	err     error
}

func (f *fakePosts) CreatePost(_ context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *post)
	return nil
}

func (f *fakePosts) GetAuthorEmails(context.Context) ([]string, error) {
	return f.authors, f.err
}

type fakeBlobStore struct {
	uploads []string
	err     error
}

func (f *fakeBlobStore) Upload(_ context.Context, bucket, path string, _ []byte, _ string, _ bool) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, bucket+"/"+path)
	return nil
}

func (f *fakeBlobStore) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

type fakeMessages struct {
	repositories.MessageRepository
	sent     []models.Message
	received []models.Message
	created  []models.Message
	err      error
}

func (f *fakeMessages) GetSentHeads(context.Context, string) ([]models.Message, error) {
	return f.sent, f.err
}

func (f *fakeMessages) GetReceivedHeads(context.Context, string) ([]models.Message, error) {
	return f.received, f.err
}

func (f *fakeMessages) CreateMessage(_ context.Context, m *models.Message) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMessages) MarkRead(context.Context, string, string) error {
	return repositories.ErrNotFound
}

type fakeDirectory struct {
	emails []string
	err    error
}

func (f *fakeDirectory) ListEmails(context.Context) ([]string, error) {
	return f.emails, f.err
}

var errStoreDown = errors.New("connection refused")
