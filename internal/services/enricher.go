package services

import (
	"context"
	"strings"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"go.uber.org/zap"
)

// Field names one actor email slot on a record type and where its
// display companions are written.
type Field[T any] struct {
	Name  string
	Email func(*T) string
	Set   func(*T, models.ProfileDisplay)
}

// CompanionFields returns the username and avatar field names derived from an
// email field name: user_email gives username/avatar_url, sender_email gives
// sender_username/sender_avatar_url.
func CompanionFields(field string) (username, avatar string) {
	prefix := strings.TrimSuffix(field, "_email")
	if field == "email" || prefix == "user" || prefix == "" {
		return "username", "avatar_url"
	}
	return prefix + "_username", prefix + "_avatar_url"
}

var (
	PostAuthor = Field[models.Post]{
		Name:  "user_email",
		Email: func(p *models.Post) string { return p.UserEmail },
		Set: func(p *models.Post, d models.ProfileDisplay) {
			p.Username, p.AvatarURL = d.Username, d.AvatarURL
		},
	}
	CommentAuthor = Field[models.Comment]{
		Name:  "user_email",
		Email: func(c *models.Comment) string { return c.UserEmail },
		Set: func(c *models.Comment, d models.ProfileDisplay) {
			c.Username, c.AvatarURL = d.Username, d.AvatarURL
		},
	}
	MessageSender = Field[models.Message]{
		Name:  "sender_email",
		Email: func(m *models.Message) string { return m.SenderEmail },
		Set: func(m *models.Message, d models.ProfileDisplay) {
			m.SenderUsername, m.SenderAvatarURL = d.Username, d.AvatarURL
		},
	}
	MessageReceiver = Field[models.Message]{
		Name:  "receiver_email",
		Email: func(m *models.Message) string { return m.ReceiverEmail },
		Set: func(m *models.Message, d models.ProfileDisplay) {
			m.ReceiverUsername, m.ReceiverAvatarURL = d.Username, d.AvatarURL
		},
	}
	ConversationCounterpart = Field[models.Conversation]{
		Name:  "email",
		Email: func(c *models.Conversation) string { return c.Email },
		Set: func(c *models.Conversation, d models.ProfileDisplay) {
			c.Username, c.AvatarURL = d.Username, d.AvatarURL
		},
	}
	KnownUser = Field[models.User]{
		Name:  "email",
		Email: func(u *models.User) string { return u.Email },
		Set: func(u *models.User, d models.ProfileDisplay) {
			u.Username, u.AvatarURL = d.Username, d.AvatarURL
		},
	}
)

// EnrichResult describes what an enrichment pass did.
// Err is set when the profile lookup failed and the records were left untouched.
type EnrichResult struct {
	Queried bool
	Matched int
	Err     error
}

// Enricher merges profile display data onto records at read time
type Enricher struct {
	profiles repositories.ProfileDisplayStore
	logger   *zap.Logger
}

// NewEnricher creates a new Enricher
func NewEnricher(profiles repositories.ProfileDisplayStore, logger *zap.Logger) *Enricher {
	return &Enricher{profiles: profiles, logger: logger}
}

// Lookup fetches the display data of the given emails in a single query
func (e *Enricher) Lookup(ctx context.Context, emails []string) (map[string]models.ProfileDisplay, EnrichResult) {
	if len(emails) == 0 {
		return nil, EnrichResult{}
	}
	displays, err := e.profiles.GetDisplayByEmails(ctx, emails)
	if err != nil {
		e.logger.Warn("profile enrichment skipped",
			zap.Int("emails", len(emails)),
			zap.Error(err),
		)
		return nil, EnrichResult{Queried: true, Err: err}
	}
	byEmail := make(map[string]models.ProfileDisplay, len(displays))
	for _, d := range displays {
		byEmail[d.Email] = d
	}
	return byEmail, EnrichResult{Queried: true, Matched: len(byEmail)}
}

// Enrich fills the display companions of every field on every record.
// Records whose email has no profile keep nil companions. A failed lookup
// leaves all records unmodified and is reported in the result, not returned.
func Enrich[T any](ctx context.Context, e *Enricher, records []T, fields ...Field[T]) EnrichResult {
	seen := make(map[string]struct{})
	var emails []string
	for i := range records {
		for _, f := range fields {
			email := f.Email(&records[i])
			if email == "" {
				continue
			}
			if _, ok := seen[email]; ok {
				continue
			}
			seen[email] = struct{}{}
			emails = append(emails, email)
		}
	}

	byEmail, result := e.Lookup(ctx, emails)
	if result.Err != nil || len(byEmail) == 0 {
		return result
	}

	for i := range records {
		for _, f := range fields {
			if d, ok := byEmail[f.Email(&records[i])]; ok {
				f.Set(&records[i], d)
			}
		}
	}
	return result
}
