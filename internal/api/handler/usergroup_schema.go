package handler

import "strings"

// userGroupRequest is shared by create and update: both carry the full
// mutable surface of a group. Member ids may repeat; the service collapses
// duplicates before validating them. memberIds must be present but may be
// empty.
type userGroupRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	MemberIDs   *[]string `json:"memberIds"   validate:"required,dive,required"`
}

func (r *userGroupRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	trimAll(r.MemberIDs)
}
