package models

import "time"

// Post represents a feed entry. Author display fields are filled at read time.
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserEmail string    `json:"user_email" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url"`
	VideoURL  *string   `json:"video_url"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Username and AvatarURL are not persisted; computed from the author's profile
	Username  *string `json:"username" gorm:"-"`
	AvatarURL *string `json:"avatar_url" gorm:"-"`
}

// CreatePostRequest defines the multipart form fields for creating a post
type CreatePostRequest struct {
	Content   string `form:"content" validate:"required,min=1"`
	UserEmail string `form:"user_email" validate:"required,email"`
}
