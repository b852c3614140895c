package models

// Page is one page of a paginated listing plus the collection-wide total.
type Page[T any] struct {
	Items      []T
	TotalItems int
}

// TotalPages computes the page count for the given page size. A collection
// with zero items has zero pages; the listing renders empty without error.
func (p Page[T]) TotalPages(pageSize int) int {
	if pageSize <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + pageSize - 1) / pageSize
}

// Filter is the active category constraint set for the project listing.
// A zero id means "no constraint" for that taxonomy; the three constraints
// compose as a logical AND.
type Filter struct {
	SegmentID  int
	PlatformID int
	LanguageID int
}

// IsZero reports whether no constraint is active.
func (f Filter) IsZero() bool {
	return f.SegmentID == 0 && f.PlatformID == 0 && f.LanguageID == 0
}
