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

// projectRecord is the stored shape. Owner ids never leave the service; the
// public domain.Project view is computed from the record on every read.
type projectRecord struct {
	id            string
	seq           int
	name          string
	description   string
	kind          domain.ProjectKind
	ownerIDs      []string
	ownerGroupIDs []string
	createdAt     time.Time
	updatedAt     time.Time
}

func (r *projectRecord) view() domain.Project {
	return domain.Project{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		Kind:        r.kind,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
}

// ProjectService owns the project map and is its sole mutator. It has no
// dependencies on the other services.
type ProjectService struct {
	projects map[string]*projectRecord
	nextID   int
	log      zerolog.Logger
}

// NewProjectService returns a ProjectService pre-populated with the two
// development seed projects.
func NewProjectService(log zerolog.Logger) *ProjectService {
	s := &ProjectService{
		projects: make(map[string]*projectRecord),
		nextID:   1,
		log:      log,
	}
	s.seed()
	return s
}

func (s *ProjectService) seed() {
	seeds := []ports.CreateProjectInput{
		{
			Name:          "Research Vault",
			Description:   "Personal project for internal research documents.",
			Kind:          domain.ProjectKindPersonal,
			OwnerIDs:      []string{"user-1"},
			OwnerGroupIDs: []string{},
		},
		{
			Name:          "Shared Workspace",
			Description:   "Collaboration space for the operations team.",
			Kind:          domain.ProjectKindShared,
			OwnerIDs:      []string{"user-2"},
			OwnerGroupIDs: []string{"group-1"},
		},
	}

	for _, input := range seeds {
		if _, err := s.Create(context.Background(), input); err != nil {
			s.log.Error().Err(err).Str("name", input.Name).Msg("project seed failed")
		}
	}
}

func (s *ProjectService) nextProjectID() (string, int) {
	seq := s.nextID
	s.nextID++
	return fmt.Sprintf("project-%d", seq), seq
}

// sortedNewest returns all records ordered createdAt-descending. The creation
// sequence breaks ties so ordering stays deterministic under a coarse clock.
func (s *ProjectService) sortedNewest() []*projectRecord {
	records := make([]*projectRecord, 0, len(s.projects))
	for _, r := range s.projects {
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

// List returns projects newest-first, sliced [offset, offset+limit).
func (s *ProjectService) List(_ context.Context, limit, offset int) ([]domain.Project, error) {
	page := paginate(s.sortedNewest(), limit, offset)
	out := make([]domain.Project, 0, len(page))
	for _, r := range page {
		out = append(out, r.view())
	}
	return out, nil
}

// Create stores a new project and returns its public view.
func (s *ProjectService) Create(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	id, seq := s.nextProjectID()
	now := time.Now().UTC()
	record := &projectRecord{
		id:            id,
		seq:           seq,
		name:          input.Name,
		description:   input.Description,
		kind:          input.Kind,
		ownerIDs:      append([]string(nil), input.OwnerIDs...),
		ownerGroupIDs: append([]string(nil), input.OwnerGroupIDs...),
		createdAt:     now,
		updatedAt:     now,
	}

	s.projects[record.id] = record
	s.log.Info().Str("project_id", record.id).Str("kind", string(record.kind)).Msg("project created")

	v := record.view()
	return &v, nil
}

// Get is the non-throwing lookup: it returns (nil, nil) for an unknown id.
func (s *ProjectService) Get(_ context.Context, projectID string) (*domain.Project, error) {
	record, ok := s.projects[projectID]
	if !ok {
		return nil, nil
	}
	v := record.view()
	return &v, nil
}

// Require returns the project or a NotFoundError. Dependent services use it
// to validate project references.
func (s *ProjectService) Require(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NewNotFoundError("Project not found")
	}
	return project, nil
}

// Update replaces the mutable project fields. Kind is immutable after
// creation and is deliberately absent from the input.
func (s *ProjectService) Update(_ context.Context, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
	record, ok := s.projects[projectID]
	if !ok {
		return nil, domain.NewNotFoundError("Project not found")
	}

	record.name = input.Name
	record.description = input.Description
	record.ownerIDs = append([]string(nil), input.OwnerIDs...)
	record.ownerGroupIDs = append([]string(nil), input.OwnerGroupIDs...)
	record.updatedAt = time.Now().UTC()

	s.log.Info().Str("project_id", record.id).Msg("project updated")

	v := record.view()
	return &v, nil
}

// GetAll returns every project in creation order.
func (s *ProjectService) GetAll(_ context.Context) ([]domain.Project, error) {
	records := make([]*projectRecord, 0, len(s.projects))
	for _, r := range s.projects {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	out := make([]domain.Project, 0, len(records))
	for _, r := range records {
		out = append(out, r.view())
	}
	return out, nil
}
