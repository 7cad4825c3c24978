package domain

import "time"

// UserGroup is the denormalized public group view. The owning project and
// the member users are embedded; member ids on the stored record are
// de-duplicated in first-occurrence order.
type UserGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Project     Project   `json:"project"`
	Members     []User    `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
