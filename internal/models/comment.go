package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"type:varchar(36);index;not null"`
	Post      *Post     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserEmail string    `json:"user_email" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Username  *string `json:"username" gorm:"-"`
	AvatarURL *string `json:"avatar_url" gorm:"-"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	PostID    string `json:"post_id" validate:"required,uuid"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Content   string `json:"content" validate:"required,min=1,max=2000"`
}
