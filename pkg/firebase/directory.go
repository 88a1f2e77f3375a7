package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

// Directory lists the accounts registered with Firebase Auth
type Directory struct {
	client *auth.Client
}

// NewDirectory creates a new Directory
func NewDirectory(client *auth.Client) *Directory {
	return &Directory{client: client}
}

// ListEmails returns the email of every account that has one
func (d *Directory) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	it := d.client.Users(ctx, "")
	for {
		user, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing firebase users: %w", err)
		}
		if user.Email != "" {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}
