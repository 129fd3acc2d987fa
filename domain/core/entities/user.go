package entities

import "time"

// User is a registered account. Records are immutable once created.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary returns the public part of the user shown next to posts
func (u User) Summary() *Author {
	return &Author{ID: u.ID, Username: u.Username}
}

// Author is the public reference to a post's author
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
