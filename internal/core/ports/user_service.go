package ports

import (
	"context"

	"github.com/adminconsole/admin-api/internal/core/domain"
)

// CreateUserInput carries the fields needed to create a user. Users start
// with no assigned roles.
type CreateUserInput struct {
	Email string
}

// UserService defines use-case operations on users.
type UserService interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Get returns (nil, nil) for an unknown id.
	Get(ctx context.Context, userID string) (*domain.User, error)
	// RequireMany validates that every id resolves, collecting all missing
	// ids into a single ValidationError rather than failing on the first.
	// Resolved users are returned in de-duplicated input order.
	RequireMany(ctx context.Context, userIDs []string) ([]domain.User, error)
}
