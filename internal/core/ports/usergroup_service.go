package ports

import (
	"context"

	"github.com/adminconsole/admin-api/internal/core/domain"
)

// UserGroupInput carries the caller-supplied group fields. Create and update
// share the same shape; the owning project is addressed separately and is
// immutable. Member ids are de-duplicated in first-occurrence order and must
// all resolve to existing users.
type UserGroupInput struct {
	Name        string
	Description string
	MemberIDs   []string
}

// UserGroupService defines use-case operations on user groups, with the same
// project scoping rules as RoleService.
type UserGroupService interface {
	List(ctx context.Context, projectID string, limit, offset int) ([]domain.UserGroup, error)
	Create(ctx context.Context, projectID string, input UserGroupInput) (*domain.UserGroup, error)
	// Get returns (nil, nil) when the group is unknown or belongs to a
	// different project.
	Get(ctx context.Context, projectID, groupID string) (*domain.UserGroup, error)
	Update(ctx context.Context, projectID, groupID string, input UserGroupInput) (*domain.UserGroup, error)
}
