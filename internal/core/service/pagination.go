package service

// paginate returns items[offset : offset+limit] clamped to the slice bounds.
// Callers validate limit and offset before a request reaches a service, so
// out-of-range values here simply yield an empty page.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
