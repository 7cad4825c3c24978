package domain

import "time"

// User is the public user view with assigned roles resolved and embedded.
// Emails are stored trimmed and lower-cased.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
