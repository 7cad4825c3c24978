package domain

import "time"

// ProjectKind classifies a project. It is fixed at creation time.
type ProjectKind string

const (
	ProjectKindPersonal ProjectKind = "personal"
	ProjectKindShared   ProjectKind = "shared"
)

// Valid reports whether k is one of the known project kinds.
func (k ProjectKind) Valid() bool {
	return k == ProjectKindPersonal || k == ProjectKindShared
}

// Project is the public project view. Owner ids live only on the stored
// record and are stripped before a project leaves its service.
type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Kind        ProjectKind `json:"kind"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
