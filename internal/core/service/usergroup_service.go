package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

type userGroupRecord struct {
	id          string
	seq         int
	projectID   string
	name        string
	description string
	memberIDs   []string
	createdAt   time.Time
	updatedAt   time.Time
}

// UserGroupService owns the group map. It validates project references
// through ProjectService and member references through UserService; it never
// touches their storage directly.
type UserGroupService struct {
	groups   map[string]*userGroupRecord
	nextID   int
	projects ports.ProjectService
	users    ports.UserService
	log      zerolog.Logger
}

// NewUserGroupService returns a UserGroupService with the development seed
// group in place.
func NewUserGroupService(projects ports.ProjectService, users ports.UserService, log zerolog.Logger) *UserGroupService {
	s := &UserGroupService{
		groups:   make(map[string]*userGroupRecord),
		nextID:   1,
		projects: projects,
		users:    users,
		log:      log,
	}
	s.seed()
	return s
}

func (s *UserGroupService) seed() {
	ctx := context.Background()
	projects, err := s.projects.GetAll(ctx)
	if err != nil || len(projects) == 0 {
		return
	}
	members, err := s.users.List(ctx, 5, 0)
	if err != nil || len(members) == 0 {
		return
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	input := ports.UserGroupInput{
		Name:        "Core Maintainers",
		Description: "Primary maintainers for the project",
		MemberIDs:   memberIDs,
	}
	if _, err := s.Create(ctx, projects[0].ID, input); err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("user group seed failed")
	}
}

func (s *UserGroupService) nextGroupID() (string, int) {
	seq := s.nextID
	s.nextID++
	return fmt.Sprintf("group-%d", seq), seq
}

// normalizeMemberIDs de-duplicates member ids, keeping the first occurrence
// of each. Duplicates are not an error.
func normalizeMemberIDs(memberIDs []string) []string {
	seen := make(map[string]struct{}, len(memberIDs))
	out := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// toUserGroup builds the denormalized public view. Overrides skip redundant
// lookups when the caller already resolved the project or members.
func (s *UserGroupService) toUserGroup(ctx context.Context, record *userGroupRecord, project *domain.Project, members []domain.User) (*domain.UserGroup, error) {
	if project == nil {
		p, err := s.projects.Require(ctx, record.projectID)
		if err != nil {
			return nil, err
		}
		project = p
	}

	if members == nil {
		resolved, err := s.users.RequireMany(ctx, record.memberIDs)
		if err != nil {
			return nil, err
		}
		members = resolved
	}

	return &domain.UserGroup{
		ID:          record.id,
		Name:        record.name,
		Description: record.description,
		Project:     *project,
		Members:     members,
		CreatedAt:   record.createdAt,
		UpdatedAt:   record.updatedAt,
	}, nil
}

func (s *UserGroupService) sortedNewest(projectID string) []*userGroupRecord {
	records := make([]*userGroupRecord, 0, len(s.groups))
	for _, r := range s.groups {
		if r.projectID == projectID {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].createdAt.Equal(records[j].createdAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].createdAt.After(records[j].createdAt)
	})
	return records
}

// List returns the project's groups newest-first, sliced [offset, offset+limit).
func (s *UserGroupService) List(ctx context.Context, projectID string, limit, offset int) ([]domain.UserGroup, error) {
	project, err := s.projects.Require(ctx, projectID)
	if err != nil {
		return nil, err
	}

	page := paginate(s.sortedNewest(projectID), limit, offset)
	out := make([]domain.UserGroup, 0, len(page))
	for _, record := range page {
		group, err := s.toUserGroup(ctx, record, project, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *group)
	}
	return out, nil
}

// Create stores a new group under the given project. Member ids are
// de-duplicated first, then every remaining id must resolve to a user.
func (s *UserGroupService) Create(ctx context.Context, projectID string, input ports.UserGroupInput) (*domain.UserGroup, error) {
	project, err := s.projects.Require(ctx, projectID)
	if err != nil {
		return nil, err
	}

	memberIDs := normalizeMemberIDs(input.MemberIDs)
	members, err := s.users.RequireMany(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	id, seq := s.nextGroupID()
	now := time.Now().UTC()
	record := &userGroupRecord{
		id:          id,
		seq:         seq,
		projectID:   projectID,
		name:        input.Name,
		description: input.Description,
		createdAt:   now,
		updatedAt:   now,
	}
	record.memberIDs = make([]string, 0, len(members))
	for _, member := range members {
		record.memberIDs = append(record.memberIDs, member.ID)
	}

	s.groups[record.id] = record
	s.log.Info().Str("group_id", record.id).Str("project_id", projectID).Int("members", len(members)).Msg("user group created")

	return s.toUserGroup(ctx, record, project, members)
}

// Get returns the group only when it exists and belongs to projectID;
// otherwise (nil, nil).
func (s *UserGroupService) Get(ctx context.Context, projectID, groupID string) (*domain.UserGroup, error) {
	record, ok := s.groups[groupID]
	if !ok || record.projectID != projectID {
		return nil, nil
	}
	return s.toUserGroup(ctx, record, nil, nil)
}

// Update replaces the mutable group fields, re-normalizing and re-validating
// the member list. The owning project cannot be changed; a projectID mismatch
// reads as not found.
func (s *UserGroupService) Update(ctx context.Context, projectID, groupID string, input ports.UserGroupInput) (*domain.UserGroup, error) {
	record, ok := s.groups[groupID]
	if !ok || record.projectID != projectID {
		return nil, domain.NewNotFoundError("User group not found")
	}

	memberIDs := normalizeMemberIDs(input.MemberIDs)
	members, err := s.users.RequireMany(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	record.name = input.Name
	record.description = input.Description
	record.memberIDs = record.memberIDs[:0]
	for _, member := range members {
		record.memberIDs = append(record.memberIDs, member.ID)
	}
	record.updatedAt = time.Now().UTC()

	s.log.Info().Str("group_id", record.id).Str("project_id", projectID).Msg("user group updated")

	return s.toUserGroup(ctx, record, nil, members)
}
