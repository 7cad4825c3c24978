package ports

import (
	"context"

	"github.com/adminconsole/admin-api/internal/core/domain"
)

// CreateProjectInput carries all fields needed to create a project.
// Owner ids are stored as given; duplicates are harmless and not rejected.
type CreateProjectInput struct {
	Name          string
	Description   string
	Kind          domain.ProjectKind
	OwnerIDs      []string
	OwnerGroupIDs []string
}

// UpdateProjectInput carries the mutable project fields. The id and kind are
// fixed at creation and cannot be changed.
type UpdateProjectInput struct {
	Name          string
	Description   string
	OwnerIDs      []string
	OwnerGroupIDs []string
}

// ProjectService defines use-case operations on projects. Get returns
// (nil, nil) for an unknown id; Require fails with a NotFoundError instead
// and is the variant dependent services use to validate project references.
// Projects are never deleted.
type ProjectService interface {
	List(ctx context.Context, limit, offset int) ([]domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Require(ctx context.Context, projectID string) (*domain.Project, error)
	Update(ctx context.Context, projectID string, input UpdateProjectInput) (*domain.Project, error)
	// GetAll returns every project in creation order. Used by seed wiring only.
	GetAll(ctx context.Context) ([]domain.Project, error)
}
