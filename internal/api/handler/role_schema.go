package handler

import "strings"

// roleRequest is shared by create and update: both carry the full mutable
// surface of a role. The owning project comes from the path and never the
// body. attributeIds must be present but may be empty.
type roleRequest struct {
	Name         string    `json:"name"         validate:"required"`
	Description  string    `json:"description"  validate:"required"`
	AttributeIDs *[]string `json:"attributeIds" validate:"required,dive,required"`
}

func (r *roleRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	trimAll(r.AttributeIDs)
}
