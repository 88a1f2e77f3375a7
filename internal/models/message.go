package models

import "time"

// Message is a direct message stored in MongoDB
type Message struct {
	ID            string    `json:"id" bson:"_id"`
	SenderEmail   string    `json:"sender_email" bson:"sender_email"`
	ReceiverEmail string    `json:"receiver_email" bson:"receiver_email"`
	Content       string    `json:"content" bson:"content"`
	Read          bool      `json:"read" bson:"read"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`

	SenderUsername    *string `json:"sender_username" bson:"-"`
	SenderAvatarURL   *string `json:"sender_avatar_url" bson:"-"`
	ReceiverUsername  *string `json:"receiver_username" bson:"-"`
	ReceiverAvatarURL *string `json:"receiver_avatar_url" bson:"-"`
}

// CreateMessageRequest defines the request body for sending a message
type CreateMessageRequest struct {
	ReceiverEmail string `json:"receiver_email" validate:"required,email"`
	Content       string `json:"content" validate:"required,min=1,max=2000"`
}

// Conversation summarises a thread with one counterpart
type Conversation struct {
	Email         string    `json:"email"`
	Username      *string   `json:"username"`
	AvatarURL     *string   `json:"avatar_url"`
	LastMessageAt time.Time `json:"last_message_at"`
}
