package handler

import "strings"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// trimAll trims surrounding whitespace from each entry of the slice behind p.
// Runs before validation so whitespace-only entries fail the required check.
// A nil pointer is left alone; the required check reports the missing field.
func trimAll(p *[]string) {
	if p == nil {
		return
	}
	for i, v := range *p {
		(*p)[i] = strings.TrimSpace(v)
	}
}
