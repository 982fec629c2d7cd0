package utils

// HasMore reports whether matches remain past the current page.
// limit == 0 means "no page bound" and the formula degenerates to
// skip < total; callers depend on that exact behavior.
func HasMore(skip, limit, total int64) bool {
	return skip+limit < total
}
