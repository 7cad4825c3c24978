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

type roleRecord struct {
	id           string
	seq          int
	projectID    string
	name         string
	description  string
	attributeIDs []string
	createdAt    time.Time
	updatedAt    time.Time
}

// RoleService owns the role map and the fixed attribute catalog. Project
// references are validated through the ProjectService accessor methods only.
type RoleService struct {
	roles      map[string]*roleRecord
	attributes map[string]domain.RoleAttribute
	nextID     int
	projects   ports.ProjectService
	log        zerolog.Logger
}

// NewRoleService returns a RoleService with the attribute catalog and the
// development seed roles in place.
func NewRoleService(projects ports.ProjectService, log zerolog.Logger) *RoleService {
	s := &RoleService{
		roles:      make(map[string]*roleRecord),
		attributes: make(map[string]domain.RoleAttribute),
		nextID:     1,
		projects:   projects,
		log:        log,
	}
	s.seedAttributes()
	s.seedRoles()
	return s
}

func (s *RoleService) seedAttributes() {
	seeds := []domain.RoleAttribute{
		{ID: "attr-read", Name: "read", Description: "Read-only access"},
		{ID: "attr-write", Name: "write", Description: "Write access"},
		{ID: "attr-admin", Name: "admin", Description: "Administrative control"},
	}
	for _, attr := range seeds {
		s.attributes[attr.ID] = attr
	}
}

func (s *RoleService) seedRoles() {
	ctx := context.Background()
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("role seed: listing projects failed")
		return
	}

	type roleSeed struct {
		projectIndex int
		input        ports.RoleInput
	}
	seeds := []roleSeed{
		{0, ports.RoleInput{
			Name:         "Viewer",
			Description:  "Can view project resources",
			AttributeIDs: []string{"attr-read"},
		}},
		{0, ports.RoleInput{
			Name:         "Editor",
			Description:  "Can view and modify project resources",
			AttributeIDs: []string{"attr-read", "attr-write"},
		}},
		{1, ports.RoleInput{
			Name:         "Maintainer",
			Description:  "Manages project members and permissions",
			AttributeIDs: []string{"attr-read", "attr-write", "attr-admin"},
		}},
	}

	for _, seed := range seeds {
		if seed.projectIndex >= len(projects) {
			continue
		}
		if _, err := s.Create(ctx, projects[seed.projectIndex].ID, seed.input); err != nil {
			s.log.Error().Err(err).Str("name", seed.input.Name).Msg("role seed failed")
		}
	}
}

func (s *RoleService) nextRoleID() (string, int) {
	seq := s.nextID
	s.nextID++
	return fmt.Sprintf("role-%d", seq), seq
}

// resolveAttributes maps attribute ids to catalog entries, rejecting any id
// the catalog does not contain.
func (s *RoleService) resolveAttributes(attributeIDs []string) ([]domain.RoleAttribute, error) {
	attributes := make([]domain.RoleAttribute, 0, len(attributeIDs))
	for _, id := range attributeIDs {
		attr, ok := s.attributes[id]
		if !ok {
			return nil, domain.NewValidationError("Unknown attribute id: %s", id)
		}
		attributes = append(attributes, attr)
	}
	return attributes, nil
}

// toRole builds the denormalized public view of a record. The project and
// attribute overrides skip redundant lookups when the caller already resolved
// them; stored data that no longer resolves is a hard failure, never dropped.
func (s *RoleService) toRole(ctx context.Context, record *roleRecord, project *domain.Project, attributes []domain.RoleAttribute) (*domain.Role, error) {
	if project == nil {
		p, err := s.projects.Require(ctx, record.projectID)
		if err != nil {
			return nil, err
		}
		project = p
	}

	if attributes == nil {
		attributes = make([]domain.RoleAttribute, 0, len(record.attributeIDs))
		for _, id := range record.attributeIDs {
			attr, ok := s.attributes[id]
			if !ok {
				return nil, domain.NewValidationError("Unknown role attribute: %s", id)
			}
			attributes = append(attributes, attr)
		}
	}

	return &domain.Role{
		ID:          record.id,
		Name:        record.name,
		Description: record.description,
		Project:     *project,
		Attributes:  attributes,
		CreatedAt:   record.createdAt,
		UpdatedAt:   record.updatedAt,
	}, nil
}

func (s *RoleService) sortedNewest(projectID string) []*roleRecord {
	records := make([]*roleRecord, 0, len(s.roles))
	for _, r := range s.roles {
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

// List returns the project's roles newest-first, sliced [offset, offset+limit).
func (s *RoleService) List(ctx context.Context, projectID string, limit, offset int) ([]domain.Role, error) {
	project, err := s.projects.Require(ctx, projectID)
	if err != nil {
		return nil, err
	}

	page := paginate(s.sortedNewest(projectID), limit, offset)
	out := make([]domain.Role, 0, len(page))
	for _, record := range page {
		role, err := s.toRole(ctx, record, project, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *role)
	}
	return out, nil
}

// Create stores a new role under the given project.
func (s *RoleService) Create(ctx context.Context, projectID string, input ports.RoleInput) (*domain.Role, error) {
	project, err := s.projects.Require(ctx, projectID)
	if err != nil {
		return nil, err
	}
	attributes, err := s.resolveAttributes(input.AttributeIDs)
	if err != nil {
		return nil, err
	}

	id, seq := s.nextRoleID()
	now := time.Now().UTC()
	record := &roleRecord{
		id:          id,
		seq:         seq,
		projectID:   projectID,
		name:        input.Name,
		description: input.Description,
		createdAt:   now,
		updatedAt:   now,
	}
	record.attributeIDs = make([]string, 0, len(attributes))
	for _, attr := range attributes {
		record.attributeIDs = append(record.attributeIDs, attr.ID)
	}

	s.roles[record.id] = record
	s.log.Info().Str("role_id", record.id).Str("project_id", projectID).Msg("role created")

	return s.toRole(ctx, record, project, attributes)
}

// Get returns the role only when it exists and belongs to projectID;
// otherwise (nil, nil).
func (s *RoleService) Get(ctx context.Context, projectID, roleID string) (*domain.Role, error) {
	record, ok := s.roles[roleID]
	if !ok || record.projectID != projectID {
		return nil, nil
	}
	return s.toRole(ctx, record, nil, nil)
}

// Update replaces the mutable role fields. The owning project cannot be
// changed; a projectID mismatch reads as not found.
func (s *RoleService) Update(ctx context.Context, projectID, roleID string, input ports.RoleInput) (*domain.Role, error) {
	record, ok := s.roles[roleID]
	if !ok || record.projectID != projectID {
		return nil, domain.NewNotFoundError("Role not found")
	}

	attributes, err := s.resolveAttributes(input.AttributeIDs)
	if err != nil {
		return nil, err
	}

	record.name = input.Name
	record.description = input.Description
	record.attributeIDs = record.attributeIDs[:0]
	for _, attr := range attributes {
		record.attributeIDs = append(record.attributeIDs, attr.ID)
	}
	record.updatedAt = time.Now().UTC()

	s.log.Info().Str("role_id", record.id).Str("project_id", projectID).Msg("role updated")

	return s.toRole(ctx, record, nil, attributes)
}

// GetManyByIDs resolves roles best-effort: ids that no longer exist are
// silently omitted. This is the read-side tolerance for already-stored data;
// writes validate strictly.
func (s *RoleService) GetManyByIDs(ctx context.Context, roleIDs []string) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		record, ok := s.roles[id]
		if !ok {
			continue
		}
		role, err := s.toRole(ctx, record, nil, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *role)
	}
	return out, nil
}

// GetAll returns every role in creation order.
func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	records := make([]*roleRecord, 0, len(s.roles))
	for _, r := range s.roles {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	out := make([]domain.Role, 0, len(records))
	for _, record := range records {
		role, err := s.toRole(ctx, record, nil, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *role)
	}
	return out, nil
}
