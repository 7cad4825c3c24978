package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

type userRecord struct {
	id        string
	seq       int
	email     string
	roleIDs   []string
	createdAt time.Time
	updatedAt time.Time
}

// UserService owns the user map. Role ids stored on a user are resolved
// through RoleService when building the public view.
type UserService struct {
	users  map[string]*userRecord
	nextID int
	roles  ports.RoleService
	log    zerolog.Logger
}

// NewUserService returns a UserService with the development seed users in
// place, each assigned one of the seed roles when available.
func NewUserService(roles ports.RoleService, log zerolog.Logger) *UserService {
	s := &UserService{
		users:  make(map[string]*userRecord),
		nextID: 1,
		roles:  roles,
		log:    log,
	}
	s.seed()
	return s
}

func (s *UserService) seed() {
	ctx := context.Background()
	seedRoles, err := s.roles.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("user seed: listing roles failed")
		seedRoles = nil
	}

	emails := []string{"miki@example.com", "sora@example.com"}
	for i, email := range emails {
		user, err := s.Create(ctx, ports.CreateUserInput{Email: email})
		if err != nil {
			s.log.Error().Err(err).Str("email", email).Msg("user seed failed")
			continue
		}
		if i < len(seedRoles) {
			if err := s.AssignRoles(ctx, user.ID, []string{seedRoles[i].ID}); err != nil {
				s.log.Error().Err(err).Str("user_id", user.ID).Msg("user seed: role assignment failed")
			}
		}
	}
}

func (s *UserService) nextUserID() (string, int) {
	seq := s.nextID
	s.nextID++
	return fmt.Sprintf("user-%d", seq), seq
}

func (s *UserService) toUser(ctx context.Context, record *userRecord) (*domain.User, error) {
	roles, err := s.roles.GetManyByIDs(ctx, record.roleIDs)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:        record.id,
		Email:     record.email,
		Roles:     roles,
		CreatedAt: record.createdAt,
		UpdatedAt: record.updatedAt,
	}, nil
}

func (s *UserService) sortedNewest() []*userRecord {
	records := make([]*userRecord, 0, len(s.users))
	for _, r := range s.users {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].createdAt.Equal(records[j].createdAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].createdAt.After(records[j].createdAt)
	})
	return records
}

// List returns users newest-first, sliced [offset, offset+limit), with
// assigned roles resolved and embedded.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	page := paginate(s.sortedNewest(), limit, offset)
	out := make([]domain.User, 0, len(page))
	for _, record := range page {
		user, err := s.toUser(ctx, record)
		if err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, nil
}

// Create stores a new user. The email is trimmed and lower-cased; an email
// that is empty after trimming is rejected.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}

	id, seq := s.nextUserID()
	now := time.Now().UTC()
	record := &userRecord{
		id:        id,
		seq:       seq,
		email:     strings.ToLower(email),
		roleIDs:   []string{},
		createdAt: now,
		updatedAt: now,
	}

	s.users[record.id] = record
	s.log.Info().Str("user_id", record.id).Msg("user created")

	return s.toUser(ctx, record)
}

// Get is the non-throwing lookup: it returns (nil, nil) for an unknown id.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	record, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return s.toUser(ctx, record)
}

// RequireMany validates every id before resolving anything, so the error
// names the complete set of unknown ids, not just the first one.
func (s *UserService) RequireMany(ctx context.Context, userIDs []string) ([]domain.User, error) {
	var missing []string
	for _, id := range userIDs {
		if _, ok := s.users[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("Unknown user ids: %s", strings.Join(missing, ", "))
	}

	seen := make(map[string]struct{}, len(userIDs))
	out := make([]domain.User, 0, len(userIDs))
	for _, id := range userIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		user, err := s.toUser(ctx, s.users[id])
		if err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, nil
}

// AssignRoles overwrites a user's role ids wholesale. No public endpoint
// exposes role assignment; only seed wiring calls this, which is why it is
// absent from the ports interface the router consumes.
func (s *UserService) AssignRoles(_ context.Context, userID string, roleIDs []string) error {
	record, ok := s.users[userID]
	if !ok {
		return domain.NewNotFoundError("User not found")
	}

	record.roleIDs = append([]string(nil), roleIDs...)
	record.updatedAt = time.Now().UTC()
	return nil
}
