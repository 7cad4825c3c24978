package domain

import "time"

// RoleAttribute is an entry in the fixed, process-wide attribute catalog.
// The catalog is seeded once and never mutated.
type RoleAttribute struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Role is the denormalized public role view: the owning project and the
// resolved attributes are embedded, never raw ids. A role belongs to exactly
// one project for its lifetime.
type Role struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Project     Project         `json:"project"`
	Attributes  []RoleAttribute `json:"attributes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
