package models

// User is a known account as listed by /api/auth/users
type User struct {
	Email     string  `json:"email"`
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}
