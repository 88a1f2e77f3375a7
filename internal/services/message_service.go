package services

import (
	"context"
	"sort"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/google/uuid"
)

// MessageService implements direct messaging
type MessageService struct {
	messages repositories.MessageRepository
	enricher *Enricher
}

// NewMessageService creates a new MessageService
func NewMessageService(messages repositories.MessageRepository, enricher *Enricher) *MessageService {
	return &MessageService{messages: messages, enricher: enricher}
}

// ListConversations returns one entry per counterpart of userEmail with the time of
// the latest message exchanged, most recent first and by counterpart email on ties.
func (s *MessageService) ListConversations(ctx context.Context, userEmail string) ([]models.Conversation, error) {
	sent, err := s.messages.GetSentHeads(ctx, userEmail)
	if err != nil {
		return nil, upstreamError("error fetching conversations", err)
	}
	received, err := s.messages.GetReceivedHeads(ctx, userEmail)
	if err != nil {
		return nil, upstreamError("error fetching conversations", err)
	}

	latest := make(map[string]time.Time)
	record := func(counterpart string, at time.Time) {
		if counterpart == "" {
			return
		}
		if prev, ok := latest[counterpart]; !ok || at.After(prev) {
			latest[counterpart] = at
		}
	}
	for _, m := range sent {
		record(m.ReceiverEmail, m.CreatedAt)
	}
	for _, m := range received {
		record(m.SenderEmail, m.CreatedAt)
	}

	conversations := make([]models.Conversation, 0, len(latest))
	for email, at := range latest {
		conversations = append(conversations, models.Conversation{Email: email, LastMessageAt: at})
	}
	sort.Slice(conversations, func(i, j int) bool {
		a, b := conversations[i], conversations[j]
		if !a.LastMessageAt.Equal(b.LastMessageAt) {
			return a.LastMessageAt.After(b.LastMessageAt)
		}
		return a.Email < b.Email
	})

	Enrich(ctx, s.enricher, conversations, ConversationCounterpart)
	return conversations, nil
}

// GetConversation returns the thread between userEmail and otherEmail, oldest first
func (s *MessageService) GetConversation(ctx context.Context, userEmail, otherEmail string) ([]models.Message, error) {
	messages, err := s.messages.GetConversation(ctx, userEmail, otherEmail)
	if err != nil {
		return nil, upstreamError("error fetching conversation", err)
	}
	Enrich(ctx, s.enricher, messages, MessageSender, MessageReceiver)
	return messages, nil
}

// SendMessage stores a message from senderEmail
func (s *MessageService) SendMessage(ctx context.Context, senderEmail string, req models.CreateMessageRequest) (*models.Message, error) {
	if senderEmail == req.ReceiverEmail {
		return nil, validationError("you cannot send a message to yourself")
	}
	message := &models.Message{
		ID:            uuid.NewString(),
		SenderEmail:   senderEmail,
		ReceiverEmail: req.ReceiverEmail,
		Content:       req.Content,
		Read:          false,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return nil, upstreamError("error sending message", err)
	}
	messages := []models.Message{*message}
	Enrich(ctx, s.enricher, messages, MessageSender, MessageReceiver)
	return &messages[0], nil
}

// MarkRead flags a message as read. Only the receiver can do so.
func (s *MessageService) MarkRead(ctx context.Context, messageID, userEmail string) error {
	if err := s.messages.MarkRead(ctx, messageID, userEmail); err != nil {
		return classify(err, "error marking message as read", "message not found", "")
	}
	return nil
}

// UnreadCount returns the number of unread messages addressed to userEmail
func (s *MessageService) UnreadCount(ctx context.Context, userEmail string) (int64, error) {
	count, err := s.messages.CountUnread(ctx, userEmail)
	if err != nil {
		return 0, upstreamError("error fetching unread count", err)
	}
	return count, nil
}
