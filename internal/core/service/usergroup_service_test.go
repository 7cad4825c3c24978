package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

// newGroupFixture wires all four services exactly as the router does.
func newGroupFixture(t *testing.T) (*UserService, *UserGroupService) {
	t.Helper()
	projects := NewProjectService(zerolog.Nop())
	roles := NewRoleService(projects, zerolog.Nop())
	users := NewUserService(roles, zerolog.Nop())
	groups := NewUserGroupService(projects, users, zerolog.Nop())
	return users, groups
}

func TestUserGroupService_SeedData(t *testing.T) {
	_, groups := newGroupFixture(t)

	group, err := groups.Get(context.Background(), "project-1", "group-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if group == nil || group.Name != "Core Maintainers" {
		t.Fatalf("unexpected seed group: %+v", group)
	}
	if len(group.Members) != 2 {
		t.Fatalf("expected both seed users as members, got %d", len(group.Members))
	}
	if group.Project.ID != "project-1" {
		t.Fatalf("seed group should belong to project-1, got %s", group.Project.ID)
	}
}

func TestUserGroupService_CreateDeduplicatesThenValidatesMembers(t *testing.T) {
	_, groups := newGroupFixture(t)

	// The duplicate user-1 is silently collapsed; only the genuinely unknown
	// id is an error, and the message names it.
	_, err := groups.Create(context.Background(), "project-1", ports.UserGroupInput{
		Name:        "Ops",
		Description: "d",
		MemberIDs:   []string{"user-1", "user-1", "user-404"},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Unknown user ids: user-404" {
		t.Fatalf("expected only user-404 named, got %q", ve.Message)
	}
}

func TestUserGroupService_CreateStoresDeduplicatedMembers(t *testing.T) {
	_, groups := newGroupFixture(t)

	group, err := groups.Create(context.Background(), "project-1", ports.UserGroupInput{
		Name:        "Ops",
		Description: "d",
		MemberIDs:   []string{"user-2", "user-1", "user-2"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if group.ID != "group-2" {
		t.Fatalf("expected group-2 after the seed group, got %s", group.ID)
	}
	if len(group.Members) != 2 {
		t.Fatalf("expected 2 deduplicated members, got %d", len(group.Members))
	}
	if group.Members[0].ID != "user-2" || group.Members[1].ID != "user-1" {
		t.Fatalf("first-occurrence order not preserved: %s, %s", group.Members[0].ID, group.Members[1].ID)
	}
	if !group.CreatedAt.Equal(group.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on create")
	}
}

func TestUserGroupService_CreateUnknownProjectFailsNotFound(t *testing.T) {
	_, groups := newGroupFixture(t)

	_, err := groups.Create(context.Background(), "project-404", ports.UserGroupInput{
		Name: "Ops", Description: "d", MemberIDs: []string{},
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Message != "Project not found" {
		t.Fatalf("unexpected message: %q", nf.Message)
	}
}

func TestUserGroupService_GetScopedToProject(t *testing.T) {
	_, groups := newGroupFixture(t)
	ctx := context.Background()

	group, err := groups.Get(ctx, "project-2", "group-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if group != nil {
		t.Fatalf("cross-project get should return nil, got %+v", group)
	}
}

func TestUserGroupService_UpdateScopeMismatchFailsNotFound(t *testing.T) {
	_, groups := newGroupFixture(t)

	_, err := groups.Update(context.Background(), "project-2", "group-1", ports.UserGroupInput{
		Name: "x", Description: "y", MemberIDs: []string{},
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Message != "User group not found" {
		t.Fatalf("unexpected message: %q", nf.Message)
	}
}

func TestUserGroupService_UpdateRevalidatesMembers(t *testing.T) {
	users, groups := newGroupFixture(t)
	ctx := context.Background()

	third, err := users.Create(ctx, ports.CreateUserInput{Email: "third@example.com"})
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	updated, err := groups.Update(ctx, "project-1", "group-1", ports.UserGroupInput{
		Name:        "Core Maintainers",
		Description: "Now just one",
		MemberIDs:   []string{third.ID},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Members) != 1 || updated.Members[0].ID != third.ID {
		t.Fatalf("members not replaced: %+v", updated.Members)
	}
	if updated.Project.ID != "project-1" {
		t.Fatalf("project changed on update: %s", updated.Project.ID)
	}

	_, err = groups.Update(ctx, "project-1", "group-1", ports.UserGroupInput{
		Name: "x", Description: "y", MemberIDs: []string{"user-404"},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown member, got %v", err)
	}
}

func TestUserGroupService_ListFiltersAndPaginates(t *testing.T) {
	_, groups := newGroupFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := groups.Create(ctx, "project-2", ports.UserGroupInput{
			Name: name, Description: "d", MemberIDs: []string{"user-1"},
		})
		if err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	list, err := groups.List(ctx, "project-2", 100, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 groups under project-2, got %d", len(list))
	}
	if list[0].Name != "Gamma" {
		t.Fatalf("expected newest group first, got %s", list[0].Name)
	}

	page, err := groups.List(ctx, "project-2", 2, 2)
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 1 || page[0].Name != "Alpha" {
		t.Fatalf("unexpected final page: %+v", page)
	}
}

func TestUserGroupService_ListUnknownProjectFailsNotFound(t *testing.T) {
	_, groups := newGroupFixture(t)

	_, err := groups.List(context.Background(), "project-404", 10, 0)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
