package models

import "time"

// Like is a user's like or dislike on a post. One row per (post, user).
type Like struct {
	PostID    string    `json:"post_id" gorm:"primaryKey;type:varchar(36)"`
	UserEmail string    `json:"user_email" gorm:"primaryKey"`
	Post      *Post     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IsLike    bool      `json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLikeRequest defines the request body for liking or disliking a post
type CreateLikeRequest struct {
	PostID    string `json:"post_id" validate:"required,uuid"`
	UserEmail string `json:"user_email" validate:"required,email"`
	IsLike    *bool  `json:"is_like" validate:"required"`
}

// LikeCount holds the like/dislike totals of a post
type LikeCount struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
