package ports

import (
	"context"

	"github.com/adminconsole/admin-api/internal/core/domain"
)

// RoleInput carries the caller-supplied role fields. Create and update share
// the same shape; the owning project is addressed separately and is immutable.
type RoleInput struct {
	Name         string
	Description  string
	AttributeIDs []string
}

// RoleService defines use-case operations on roles. All single-role lookups
// are scoped to a project: a role that exists under a different project is
// indistinguishable from one that does not exist.
type RoleService interface {
	List(ctx context.Context, projectID string, limit, offset int) ([]domain.Role, error)
	Create(ctx context.Context, projectID string, input RoleInput) (*domain.Role, error)
	// Get returns (nil, nil) when the role is unknown or belongs to a
	// different project.
	Get(ctx context.Context, projectID, roleID string) (*domain.Role, error)
	Update(ctx context.Context, projectID, roleID string, input RoleInput) (*domain.Role, error)
	// GetManyByIDs is a best-effort batch lookup: ids that no longer resolve
	// are silently omitted. Dependents use it to denormalize stored role ids.
	GetManyByIDs(ctx context.Context, roleIDs []string) ([]domain.Role, error)
	// GetAll returns every role in creation order. Used by seed wiring only.
	GetAll(ctx context.Context) ([]domain.Role, error)
}
