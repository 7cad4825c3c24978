package handler

import "strings"

// Owner id lists are pointers so a missing field and an empty list stay
// distinguishable: the field must be present, but an empty list is valid.
type createProjectRequest struct {
	Name          string    `json:"name"          validate:"required"`
	Description   string    `json:"description"   validate:"required"`
	Kind          string    `json:"kind"          validate:"required,oneof=personal shared"`
	OwnerIDs      *[]string `json:"ownerIds"      validate:"required,dive,required"`
	OwnerGroupIDs *[]string `json:"ownerGroupIds" validate:"required,dive,required"`
}

func (r *createProjectRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	trimAll(r.OwnerIDs)
	trimAll(r.OwnerGroupIDs)
}

// updateProjectRequest deliberately has no kind field: kind is immutable
// after creation.
type updateProjectRequest struct {
	Name          string    `json:"name"          validate:"required"`
	Description   string    `json:"description"   validate:"required"`
	OwnerIDs      *[]string `json:"ownerIds"      validate:"required,dive,required"`
	OwnerGroupIDs *[]string `json:"ownerGroupIds" validate:"required,dive,required"`
}

func (r *updateProjectRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	trimAll(r.OwnerIDs)
	trimAll(r.OwnerGroupIDs)
}
