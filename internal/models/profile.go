package models

import "time"

// Profile is keyed by the account email handed out by the auth provider.
type Profile struct {
	Email               string    `json:"email" gorm:"primaryKey"`
	Username            *string   `json:"username" gorm:"uniqueIndex"`
	AvatarURL           *string   `json:"avatar_url"`
	OnboardingCompleted bool      `json:"onboarding_completed" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "user_profiles" }

// ProfileDisplay is the subset of a profile merged onto posts, comments and messages
type ProfileDisplay struct {
	Email     string  `json:"email"`
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type CreateProfileRequest struct {
	Email               string  `json:"email" validate:"required,email"`
	Username            *string `json:"username" validate:"omitempty,min=1,max=50"`
	AvatarURL           *string `json:"avatar_url" validate:"omitempty,url"`
	OnboardingCompleted bool    `json:"onboarding_completed"`
}

// UpdateProfileRequest only carries the fields being changed
type UpdateProfileRequest struct {
	Username            *string `json:"username" validate:"omitempty,min=1,max=50"`
	AvatarURL           *string `json:"avatar_url" validate:"omitempty,url"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
}

// IsEmpty reports whether the request changes nothing
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Username == nil && r.AvatarURL == nil && r.OnboardingCompleted == nil
}

// UserStats aggregates a user's activity
type UserStats struct {
	TotalPosts            int64 `json:"total_posts"`
	TotalComments         int64 `json:"total_comments"`
	TotalLikesReceived    int64 `json:"total_likes_received"`
	TotalDislikesReceived int64 `json:"total_dislikes_received"`
}
