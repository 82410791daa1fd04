package models

import "time"

// User is created lazily on first login. Exactly one of Username or Email is
// the login credential; emails are stored lower-cased.
type User struct {
	ID        int64      `json:"-"`
	UserID    string     `json:"user_id"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Credential returns the login credential the user was created with.
func (u *User) Credential() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}

// UserSchool is a user's favorite relation to a school.
type UserSchool struct {
	ID       int64     `json:"-"`
	UserID   string    `json:"user_id"`
	SchoolID string    `json:"school_id"`
	AddedAt  time.Time `json:"added_at"`
	Notes    string    `json:"notes,omitempty"`
}

// FavoriteSchool is a school joined with its favorite row for list responses.
type FavoriteSchool struct {
	School
	AddedAt time.Time `json:"added_at"`
	Notes   string    `json:"notes,omitempty"`
}
